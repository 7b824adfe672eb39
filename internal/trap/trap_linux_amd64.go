//go:build linux && amd64

package trap

/*
#include <signal.h>
#include <string.h>
#include <stdint.h>
#include <ucontext.h>

// instrument_ctx mirrors ctxview.Context's field layout exactly (R8..R15,
// RDI, RSI, RBP, RBX, RDX, RAX, RCX, RSP, RIP, EFLAGS) so Go can reinterpret
// a *C.struct_instrument_ctx as a *ctxview.Context via unsafe.Pointer with
// no translation step.
struct instrument_ctx {
	uint64_t r8, r9, r10, r11, r12, r13, r14, r15;
	uint64_t rdi, rsi, rbp, rbx, rdx, rax, rcx;
	uint64_t rsp, rip, eflags;
};

extern void hookcoreTrapHandler(int sig, void *ctx, void *siginfo, void *ucontext);

static void hookcore_load_ctx(ucontext_t *uc, struct instrument_ctx *out) {
	mcontext_t *mc = &uc->uc_mcontext;
	out->r8 = mc->gregs[REG_R8];
	out->r9 = mc->gregs[REG_R9];
	out->r10 = mc->gregs[REG_R10];
	out->r11 = mc->gregs[REG_R11];
	out->r12 = mc->gregs[REG_R12];
	out->r13 = mc->gregs[REG_R13];
	out->r14 = mc->gregs[REG_R14];
	out->r15 = mc->gregs[REG_R15];
	out->rdi = mc->gregs[REG_RDI];
	out->rsi = mc->gregs[REG_RSI];
	out->rbp = mc->gregs[REG_RBP];
	out->rbx = mc->gregs[REG_RBX];
	out->rdx = mc->gregs[REG_RDX];
	out->rax = mc->gregs[REG_RAX];
	out->rcx = mc->gregs[REG_RCX];
	out->rsp = mc->gregs[REG_RSP];
	out->rip = mc->gregs[REG_RIP];
	out->eflags = mc->gregs[REG_EFL];
}

static void hookcore_store_ctx(ucontext_t *uc, struct instrument_ctx *in) {
	mcontext_t *mc = &uc->uc_mcontext;
	mc->gregs[REG_R8] = in->r8;
	mc->gregs[REG_R9] = in->r9;
	mc->gregs[REG_R10] = in->r10;
	mc->gregs[REG_R11] = in->r11;
	mc->gregs[REG_R12] = in->r12;
	mc->gregs[REG_R13] = in->r13;
	mc->gregs[REG_R14] = in->r14;
	mc->gregs[REG_R15] = in->r15;
	mc->gregs[REG_RDI] = in->rdi;
	mc->gregs[REG_RSI] = in->rsi;
	mc->gregs[REG_RBP] = in->rbp;
	mc->gregs[REG_RBX] = in->rbx;
	mc->gregs[REG_RDX] = in->rdx;
	mc->gregs[REG_RAX] = in->rax;
	mc->gregs[REG_RCX] = in->rcx;
	mc->gregs[REG_RSP] = in->rsp;
	mc->gregs[REG_RIP] = in->rip;
	mc->gregs[REG_EFL] = in->eflags;
}

static void hookcore_trampoline(int sig, siginfo_t *info, void *ucv) {
	ucontext_t *uc = (ucontext_t *)ucv;
	struct instrument_ctx scratch;
	hookcore_load_ctx(uc, &scratch);
	hookcoreTrapHandler(sig, &scratch, info, ucv);
	hookcore_store_ctx(uc, &scratch);
}

static int hookcore_install(int signum, struct sigaction *old) {
	struct sigaction act;
	memset(&act, 0, sizeof(act));
	act.sa_sigaction = hookcore_trampoline;
	act.sa_flags = SA_SIGINFO;
	if (sigemptyset(&act.sa_mask) != 0) {
		return -1;
	}
	return sigaction(signum, &act, old);
}

static void hookcore_chain(struct sigaction *old, int sig, siginfo_t *info, void *uc) {
	if (old->sa_handler == SIG_IGN) {
		return;
	}
	if (old->sa_handler == SIG_DFL || old->sa_sigaction == hookcore_trampoline) {
		signal(sig, SIG_DFL);
		raise(sig);
		return;
	}
	if (old->sa_flags & SA_SIGINFO) {
		old->sa_sigaction(sig, info, uc);
	} else {
		old->sa_handler(sig);
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/herr"
)

var savedActions [maxSignal]C.struct_sigaction

func installSignal(signum int) error {
	var old C.struct_sigaction
	if C.hookcore_install(C.int(signum), &old) != 0 {
		return herr.WithSignal(herr.ErrSigActionFailed, signum, int(lastErrno()))
	}
	savedActions[signum] = old
	return nil
}

func chain(signum int, info unsafe.Pointer, uc unsafe.Pointer) {
	old := savedActions[signum]
	C.hookcore_chain(&old, C.int(signum), (*C.siginfo_t)(info), uc)
}

//export hookcoreTrapHandler
func hookcoreTrapHandler(sig C.int, ctxPtr unsafe.Pointer, infoPtr unsafe.Pointer, ucPtr unsafe.Pointer) {
	ctx := (*ctxview.Context)(ctxPtr)
	dispatch(int(sig), ctx, infoPtr, ucPtr)
}
