// Package hookcore provides in-process, instruction-level code patching and
// instrumentation for AArch64 and x86-64 on Linux and Darwin. It rewrites
// executable pages of the calling process directly: overwriting raw
// instruction bytes (Patchcode), assembling mnemonic text in place
// (PatchAsm), trapping into a callback on every execution of an address
// while optionally replaying the original instruction afterward
// (Instrument / InstrumentNoOriginal), and redirecting a function's entry
// point to a detour (InlineHook).
//
// hookcore never locates its own targets. Finding the address to patch
// (symbol resolution, pattern scanning, a debugger attach) is the host
// program's job; every operation here takes an address already in hand.
package hookcore

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/xyproto/hookcore/internal/arch"
	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/trap"
)

// Verbose gates hookcore's own diagnostics to stderr. It defaults to the
// HOOKCORE_VERBOSE environment variable and can be overridden directly by
// embedding programs before calling into the package.
var Verbose = env.Bool("HOOKCORE_VERBOSE")

func init() {
	trap.SetVerbose(Verbose)
}

func logf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "hookcore: "+format+"\n", args...)
	}
}

// HookContext is the CPU register view handed to an instrumentation
// callback. Its concrete layout depends on build architecture (AArch64
// general-purpose registers plus SP/PC/CPSR, or x86-64 general-purpose
// registers plus RSP/RIP/EFLAGS); see the arch-specific files in
// internal/ctxview for field documentation. Mutating it before returning
// redirects control flow on resume.
type HookContext = ctxview.Context

// InstrumentCallback is invoked synchronously, on the thread that hit the
// instrumented address, every time execution reaches it.
type InstrumentCallback = func(address uint64, ctx *HookContext)

// HookError is hookcore's single error type, returned by every exported
// operation that can fail. Use errors.As to recover ErrorKind-specific
// detail (errno, Darwin kern_return_t, signal number).
type HookError = herr.Error

// ErrorKind enumerates the ways a hookcore operation can fail.
type ErrorKind = herr.Kind

// Platform is the (architecture, OS) pair hookcore is compiled for.
type Platform = arch.Platform

// CurrentPlatform reports the architecture/OS pair the running binary was
// built for.
func CurrentPlatform() Platform {
	return arch.Current()
}

// Error kinds callers commonly branch on, re-exported from internal/herr so
// a caller never has to import an internal package to use IsErrorKind.
const (
	ErrInvalidAddress          = herr.ErrInvalidAddress
	ErrUnsupportedPlatform     = herr.ErrUnsupportedPlatform
	ErrUnsupportedArchitecture = herr.ErrUnsupportedArchitecture
	ErrUnsupportedOperation    = herr.ErrUnsupportedOperation
	ErrInstrumentSlotsFull     = herr.ErrInstrumentSlotsFull
	ErrBranchOutOfRange        = herr.ErrBranchOutOfRange
	ErrDecodeFailed            = herr.ErrDecodeFailed
	ErrAsmEmptyInput           = herr.ErrAsmEmptyInput
	ErrAsmAssembleFailed       = herr.ErrAsmAssembleFailed
	ErrAsmSizeMismatch         = herr.ErrAsmSizeMismatch
	ErrPatchTooLong            = herr.ErrPatchTooLong
)

// IsErrorKind reports whether err is a hookcore error of the given kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	return herr.Is(err, kind)
}
