package main

import "unsafe"

// callUint32x2 invokes the machine code at addr as if it were
// func(uint32, uint32) uint32, using the standard trick for calling raw
// code from Go: a Go func value is itself just a pointer to a funcval
// struct whose first word is the code's entry PC, so pointing a funcval
// pointer at a single word holding addr makes the runtime jump straight
// into it with the platform's normal calling convention.
func callUint32x2(addr uint64, a, b uint32) uint32 {
	entry := uintptr(addr)
	funcval := unsafe.Pointer(&entry)
	fn := *(*func(uint32, uint32) uint32)(unsafe.Pointer(&funcval))
	return fn(a, b)
}
