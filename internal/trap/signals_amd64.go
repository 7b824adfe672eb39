//go:build amd64

package trap

// trapSignals are the signals hookcore's traps can raise on x86-64: only
// SIGTRAP, raised by INT3. Per spec.md §6 SIGILL is an AArch64-only
// fallback; on x86-64 a genuine SIGILL never advances RIP the way INT3
// does, so there is nothing for trapAddress's RIP-1 lookup to match.
var trapSignals = []int{sigtrap}
