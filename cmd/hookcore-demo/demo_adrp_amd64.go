//go:build amd64

package main

import "fmt"

// demoADRP: ADRP has no x86-64 equivalent (RIP-relative addressing on
// x86-64 is encoded directly in the instruction, not split across a
// page-relative load and a separate offset), so this demo only exists on
// AArch64.
func demoADRP() error {
	fmt.Println("adrp: ADRP is AArch64-only, nothing to demonstrate on x86-64")
	return nil
}
