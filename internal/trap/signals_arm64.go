//go:build arm64

package trap

// trapSignals are the signals hookcore's traps can raise on AArch64:
// SIGTRAP for BRK-based instrumentation, plus SIGILL as the fallback some
// kernels/emulators use to report an undefined instruction instead of a
// debug trap (spec.md §6).
var trapSignals = []int{sigtrap, sigill}
