//go:build windows

package wnet

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/winmaps/drivemap/internal/drive"
)

var (
	modmpr                     = windows.NewLazySystemDLL("mpr.dll")
	procWNetAddConnection2W    = modmpr.NewProc("WNetAddConnection2W")
	procWNetCancelConnection2W = modmpr.NewProc("WNetCancelConnection2W")
	procWNetGetConnectionW     = modmpr.NewProc("WNetGetConnectionW")
)

// WNet constants from winnetwk.h.
const (
	resourceTypeDisk     = 0x00000001 // RESOURCETYPE_DISK
	connectUpdateProfile = 0x00000001 // CONNECT_UPDATE_PROFILE
)

// queryBufLen is the initial WNetGetConnectionW buffer size in UTF-16
// units (MAX_PATH). Grown on ERROR_MORE_DATA.
const queryBufLen = 260

// netResource mirrors NETRESOURCEW from winnetwk.h.
type netResource struct {
	Scope       uint32
	Type        uint32
	DisplayType uint32
	Usage       uint32
	LocalName   *uint16
	RemoteName  *uint16
	Comment     *uint16
	Provider    *uint16
}

// Provider executes drive mapping operations through mpr.dll. The core
// serializes all calls, so no internal locking is needed.
type Provider struct {
	persistent bool
	force      bool
	logger     *slog.Logger
}

// New returns a Provider backed by the WNet API. Fails when mpr.dll or one
// of its entry points cannot be resolved.
func New(opts Options) (*Provider, error) {
	procs := []*windows.LazyProc{
		procWNetAddConnection2W,
		procWNetCancelConnection2W,
		procWNetGetConnectionW,
	}
	for _, proc := range procs {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("wnet: resolving mpr.dll: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{persistent: opts.Persistent, force: opts.Force, logger: logger}, nil
}

// Query reports the current binding of letter. ok is false when the letter
// has no connection at all. An occupied letter whose target is not a UNC
// share (subst or another DOS device) reports ok with a zero target, so
// reconciliation treats it as bound elsewhere.
func (p *Provider) Query(letter drive.Letter) (drive.UNCPath, bool, error) {
	local, err := windows.UTF16PtrFromString(letter.WithColon())
	if err != nil {
		return drive.UNCPath{}, false, &Error{Op: "query", Device: letter.WithColon(), Err: err}
	}

	buf := make([]uint16, queryBufLen)
	for {
		size := uint32(len(buf))
		r0, _, _ := procWNetGetConnectionW.Call(
			uintptr(unsafe.Pointer(local)),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&size)),
		)
		code := uint32(r0)

		switch code {
		case 0:
			raw := windows.UTF16ToString(buf)
			p.logger.Debug("wnet query", "letter", letter, "target", raw)
			target, perr := drive.ParseUNC(raw)
			if perr != nil {
				return drive.UNCPath{}, true, nil
			}

			return target, true, nil
		case codeMoreData:
			if size <= uint32(len(buf)) {
				return drive.UNCPath{}, false, p.wrap("query", letter, code)
			}
			buf = make([]uint16, size)
		case codeNotConnected:
			p.logger.Debug("wnet query", "letter", letter, "bound", false)
			return drive.UNCPath{}, false, nil
		case codeConnUnavail:
			// Remembered connection that is not live. The letter is
			// occupied; the buffer may still carry the remembered target.
			raw := windows.UTF16ToString(buf)
			p.logger.Debug("wnet query", "letter", letter, "remembered", raw)
			target, perr := drive.ParseUNC(raw)
			if perr != nil {
				return drive.UNCPath{}, true, nil
			}

			return target, true, nil
		default:
			return drive.UNCPath{}, false, p.wrap("query", letter, code)
		}
	}
}

// Bind maps m.Letter to m.Target. A nil cred binds under the ambient
// security context of the calling user.
func (p *Provider) Bind(m drive.Mapping, cred *drive.Credential) error {
	local, err := windows.UTF16PtrFromString(m.Letter.WithColon())
	if err != nil {
		return &Error{Op: "bind", Device: m.Letter.WithColon(), Err: err}
	}
	remote, err := windows.UTF16PtrFromString(m.Target.String())
	if err != nil {
		return &Error{Op: "bind", Device: m.Letter.WithColon(), Err: err}
	}

	res := netResource{
		Type:       resourceTypeDisk,
		LocalName:  local,
		RemoteName: remote,
	}

	var user, secret *uint16
	if cred != nil {
		user, err = windows.UTF16PtrFromString(cred.Principal)
		if err != nil {
			return &Error{Op: "bind", Device: m.Letter.WithColon(), Err: err}
		}
		secret, err = windows.UTF16PtrFromString(cred.Secret.Reveal())
		if err != nil {
			return &Error{Op: "bind", Device: m.Letter.WithColon(), Err: err}
		}
	}

	var flags uint32
	if p.persistent {
		flags |= connectUpdateProfile
	}

	p.logger.Debug("wnet bind",
		"letter", m.Letter,
		"target", m.Target,
		"with_credential", cred != nil,
		"persistent", p.persistent)

	r0, _, _ := procWNetAddConnection2W.Call(
		uintptr(unsafe.Pointer(&res)),
		uintptr(unsafe.Pointer(secret)),
		uintptr(unsafe.Pointer(user)),
		uintptr(flags),
	)
	if code := uint32(r0); code != 0 {
		return p.wrap("bind", m.Letter, code)
	}

	return nil
}

// Unbind removes the binding of letter. The profile entry is always cleared
// too, so a remembered mapping cannot resurrect the letter at next logon.
func (p *Provider) Unbind(letter drive.Letter) error {
	local, err := windows.UTF16PtrFromString(letter.WithColon())
	if err != nil {
		return &Error{Op: "unbind", Device: letter.WithColon(), Err: err}
	}

	var force uintptr
	if p.force {
		force = 1
	}

	p.logger.Debug("wnet unbind", "letter", letter, "force", p.force)

	r0, _, _ := procWNetCancelConnection2W.Call(
		uintptr(unsafe.Pointer(local)),
		uintptr(connectUpdateProfile),
		force,
	)
	if code := uint32(r0); code != 0 {
		return p.wrap("unbind", letter, code)
	}

	return nil
}

func (p *Provider) wrap(op string, letter drive.Letter, code uint32) *Error {
	werr := &Error{
		Op:      op,
		Device:  letter.WithColon(),
		Code:    code,
		Message: windows.Errno(code).Error(),
		Err:     classify(code),
	}
	p.logger.Debug("wnet call failed", "op", op, "letter", letter, "code", code, "message", werr.Message)

	return werr
}
