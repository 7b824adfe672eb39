// Package asmfront assembles mnemonic text into machine code for patch_asm,
// using the architecture the caller is already targeting: AArch64 little-
// endian syntax or x86-64 AT&T syntax. The non-cgo build of this package
// (no keystone.h available) always reports ErrUnsupportedOperation, mirroring
// the Rust original's Cargo "asm" feature gate with a Go build tag instead.
package asmfront

// Assemble is implemented per build-tag variant (asmfront_cgo.go,
// asmfront_nocgo.go); it assembles source for the given architecture at the
// given base address and returns the encoded bytes.
