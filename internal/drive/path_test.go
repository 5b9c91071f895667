package drive

import (
	"errors"
	"testing"
)

func TestParseUNC(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain server and share",
			raw:  `\\filer01\home`,
			want: `\\filer01\home`,
		},
		{
			name: "deep path preserved",
			raw:  `\\filer01\dept\eng\tools`,
			want: `\\filer01\dept\eng\tools`,
		},
		{
			name: "trailing backslash trimmed",
			raw:  `\\filer01\home\`,
			want: `\\filer01\home`,
		},
		{
			name: "repeated trailing backslashes trimmed",
			raw:  `\\filer01\home\\`,
			want: `\\filer01\home`,
		},
		{
			name: "shortest accepted form",
			raw:  `\\x\y`,
			want: `\\x\y`,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  `  \\filer01\home  `,
			want: `\\filer01\home`,
		},
		{
			name:    "empty input rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "local path rejected",
			raw:     `C:\foo`,
			wantErr: true,
		},
		{
			name:    "missing prefix rejected",
			raw:     `filer01\home`,
			wantErr: true,
		},
		{
			name:    "forward slashes rejected",
			raw:     "//filer01/home",
			wantErr: true,
		},
		{
			name:    "single backslash rejected",
			raw:     `\filer01\home`,
			wantErr: true,
		},
		{
			name:    "too short after prefix rejected",
			raw:     `\\ab`,
			wantErr: true,
		},
		{
			name:    "short path hidden by trailing backslash rejected",
			raw:     `\\ab\`,
			wantErr: true,
		},
		{
			name:    "empty server name rejected",
			raw:     `\\\share`,
			wantErr: true,
		},
		{
			name:    "bare prefix rejected",
			raw:     `\\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUNC(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseUNC(%q) = %v, want error", tt.raw, got)
				}
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("ParseUNC(%q) error = %v, want ErrInvalidPath", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUNC(%q) unexpected error: %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseUNC(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestUNCPath_Equal(t *testing.T) {
	a, _ := ParseUNC(`\\FILER01\Home`)
	b, _ := ParseUNC(`\\filer01\home`)
	c, _ := ParseUNC(`\\filer01\other`)

	if !a.Equal(b) {
		t.Errorf("%v and %v should compare equal (case-insensitive)", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v and %v should not compare equal", a, c)
	}
	if !(UNCPath{}).Equal(UNCPath{}) {
		t.Error("two zero paths should compare equal")
	}
}

func TestUNCPath_ServerShare(t *testing.T) {
	tests := []struct {
		raw    string
		server string
		share  string
	}{
		{`\\filer01\home`, "filer01", "home"},
		{`\\filer01\dept\eng`, "filer01", "dept"},
		{`\\srv\x`, "srv", "x"},
		{`\\hostonly`, "hostonly", ""},
	}

	for _, tt := range tests {
		p, err := ParseUNC(tt.raw)
		if err != nil {
			t.Fatalf("ParseUNC(%q): %v", tt.raw, err)
		}
		if got := p.Server(); got != tt.server {
			t.Errorf("Server(%q) = %q, want %q", tt.raw, got, tt.server)
		}
		if got := p.Share(); got != tt.share {
			t.Errorf("Share(%q) = %q, want %q", tt.raw, got, tt.share)
		}
	}
}
