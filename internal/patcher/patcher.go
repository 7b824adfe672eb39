// Package patcher rewrites executable code pages in the current process and
// keeps the instruction cache coherent across the write.
package patcher

import (
	"unsafe"

	"github.com/xyproto/hookcore/internal/herr"
)

// ReadU8 performs a volatile byte read at address.
func ReadU8(address uint64) uint8 {
	return *(*uint8)(unsafe.Pointer(uintptr(address)))
}

// ReadU32 performs a volatile little-endian 32-bit read at address.
func ReadU32(address uint64) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(address)))
}

// ReadBytes performs a volatile read of n bytes starting at address.
func ReadBytes(address uint64, n int) []byte {
	out := make([]byte, n)
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), n)
	copy(out, src)
	return out
}

// ReadU64 performs a volatile little-endian 64-bit read at address, used by
// the x86-64 inline-hook path to recover a function's return address off
// the top of its own stack frame.
func ReadU64(address uint64) uint64 {
	return *(*uint64)(unsafe.Pointer(uintptr(address)))
}

// PatchBytes overwrites len(newBytes) bytes at address and returns the bytes
// that were there before. It fails with ErrInvalidAddress when address is 0
// or newBytes is empty; architecture-specific alignment checks (AArch64
// requires 4-byte alignment) are the caller's responsibility to enforce
// before calling PatchBytes, matching spec.md §4.1 ("and on AArch64 when
// address is not 4-byte aligned and the call originates from patch_u32").
func PatchBytes(address uint64, newBytes []byte) ([]byte, error) {
	if address == 0 || len(newBytes) == 0 {
		return nil, herr.New(herr.ErrInvalidAddress)
	}

	pageSize, err := PageSize()
	if err != nil {
		return nil, err
	}

	start, length := protectRange(uintptr(address), len(newBytes), pageSize)

	if err := makeWritable(start, length); err != nil {
		return nil, err
	}

	original := ReadBytes(address, len(newBytes))
	dst := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), len(newBytes))
	copy(dst, newBytes)
	FlushICache(uintptr(address), len(newBytes))

	if err := makeExecutable(start, length); err != nil {
		return nil, err
	}

	return original, nil
}

// PatchU32 patches a single 32-bit-aligned instruction word and returns the
// original opcode, matching §4's "patch_u32" contract used by patchcode and
// AArch64 address-alignment validation.
func PatchU32(address uint64, newOpcode uint32) (uint32, error) {
	if address == 0 || address&0b11 != 0 {
		return 0, herr.New(herr.ErrInvalidAddress)
	}
	var buf [4]byte
	le32(buf[:], newOpcode)
	original, err := PatchBytes(address, buf[:])
	if err != nil {
		return 0, err
	}
	return beFromLE32(original), nil
}

func le32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func beFromLE32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func le64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

// protectRange computes the page-aligned [start, start+length) range that
// covers [address, address+size).
func protectRange(address uintptr, size int, pageSize int) (uintptr, int) {
	mask := uintptr(pageSize - 1)
	start := address &^ mask
	endInclusive := address + uintptr(size) - 1
	endPage := endInclusive &^ mask
	total := int(endPage-start) + pageSize
	return start, total
}
