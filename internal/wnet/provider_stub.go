//go:build !windows

package wnet

import (
	"github.com/winmaps/drivemap/internal/drive"
)

// Provider is a placeholder so the package type-checks on non-Windows
// platforms. New never hands one out here.
type Provider struct{}

// New reports ErrUnsupported. Drive letter bindings only exist on Windows;
// the CLI surfaces the error and exits.
func New(opts Options) (*Provider, error) {
	return nil, ErrUnsupported
}

func (p *Provider) Query(letter drive.Letter) (drive.UNCPath, bool, error) {
	return drive.UNCPath{}, false, ErrUnsupported
}

func (p *Provider) Bind(m drive.Mapping, cred *drive.Credential) error {
	return ErrUnsupported
}

func (p *Provider) Unbind(letter drive.Letter) error {
	return ErrUnsupported
}
