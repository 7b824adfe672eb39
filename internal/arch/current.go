package arch

import "runtime"

// Current returns the Platform hookcore is running on.
func Current() Platform {
	a, _ := ParseArch(runtime.GOARCH)
	o, _ := ParseOS(runtime.GOOS)
	return Platform{Arch: a, OS: o}
}
