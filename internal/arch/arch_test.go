package arch

import "testing"

func TestParseArch(t *testing.T) {
	tests := []struct {
		in      string
		want    Arch
		wantErr bool
	}{
		{in: "amd64", want: ArchX86_64},
		{in: "x86_64", want: ArchX86_64},
		{in: "ARM64", want: ArchARM64},
		{in: "aarch64", want: ArchARM64},
		{in: "riscv64", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseArch(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseArch(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseArch(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseArch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		in      string
		want    OS
		wantErr bool
	}{
		{in: "linux", want: OSLinux},
		{in: "android", want: OSLinux},
		{in: "darwin", want: OSDarwin},
		{in: "iOS", want: OSDarwin},
		{in: "windows", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOS(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOS(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOS(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlatformString(t *testing.T) {
	p := Platform{Arch: ArchARM64, OS: OSDarwin}
	if got, want := p.String(), "aarch64-darwin"; got != want {
		t.Errorf("Platform.String() = %q, want %q", got, want)
	}
}

func TestCurrentIsNeverUnknown(t *testing.T) {
	// Current() parses runtime.GOARCH/GOOS, which on any platform this
	// module actually builds for always resolve to a known Arch/OS.
	p := Current()
	if p.Arch == ArchUnknown {
		t.Errorf("Current().Arch = unknown on a supported build target")
	}
	if p.OS == OSUnknown {
		t.Errorf("Current().OS = unknown on a supported build target")
	}
}
