//go:build amd64

package ctxview

// Context is the x86-64 execution-context view handed to instrumentation
// callbacks. Field order mirrors glibc's mcontext_t gregset layout
// (REG_R8..REG_EFL). It is always a copy: the signal paths load it field by
// field from the kernel ucontext into a scratch struct on the handler's
// stack and store it back after dispatch (no x86-64 platform in the
// supported matrix aliases the kernel buffer in place).
type Context struct {
	R8      uint64
	R9      uint64
	R10     uint64
	R11     uint64
	R12     uint64
	R13     uint64
	R14     uint64
	R15     uint64
	RDI     uint64
	RSI     uint64
	RBP     uint64
	RBX     uint64
	RDX     uint64
	RAX     uint64
	RCX     uint64
	RSP     uint64
	RIP     uint64
	EFLAGS  uint64
}

// GetPC returns the saved instruction pointer.
func (c *Context) GetPC() uint64 { return c.RIP }

// SetPC sets the instruction pointer, taking over control flow on resume.
func (c *Context) SetPC(v uint64) { c.RIP = v }

// StepLen is the minimum x86-64 instruction width; the dispatcher always
// advances by the decoded instruction length instead, not this constant.
const StepLen = 1
