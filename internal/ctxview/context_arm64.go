//go:build arm64

package ctxview

// Context is the AArch64 execution-context view handed to instrumentation
// callbacks. Its layout is deliberately bit-identical to Darwin's
// __darwin_arm_thread_state64 (29 general registers + fp + lr packed into
// the 31-entry X array, followed by sp/pc/cpsr/pad) so the Darwin signal
// path can alias the kernel's thread-state buffer in place instead of
// copying it.
type Context struct {
	X    [31]uint64 // x0..x28, x29 (fp), x30 (lr)
	SP   uint64
	PC   uint64
	CPSR uint32
	_    uint32 // padding, keeps the struct 4-byte-aligned to 272 bytes
}

// Reg returns general-purpose register n (0..30).
func (c *Context) Reg(n int) uint64 { return c.X[n] }

// SetReg sets general-purpose register n (0..30).
func (c *Context) SetReg(n int, v uint64) { c.X[n] = v }

// FP returns x29, the frame pointer.
func (c *Context) FP() uint64 { return c.X[29] }

// LR returns x30, the link register.
func (c *Context) LR() uint64 { return c.X[30] }

// SetLR sets x30, the link register.
func (c *Context) SetLR(v uint64) { c.X[30] = v }

// GetPC returns the saved program counter.
func (c *Context) GetPC() uint64 { return c.PC }

// SetPC sets the program counter, taking over control flow on resume.
func (c *Context) SetPC(v uint64) { c.PC = v }

// StepLen is the byte width of every AArch64 instruction.
const StepLen = 4
