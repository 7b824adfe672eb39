//go:build darwin && amd64

package trap

/*
#include <signal.h>
#include <string.h>
#include <stdint.h>
#include <sys/ucontext.h>

// instrument_ctx mirrors ctxview.Context's field layout exactly, so Go can
// reinterpret a *C.struct_instrument_ctx as a *ctxview.Context via
// unsafe.Pointer with no translation step.
struct instrument_ctx {
	uint64_t r8, r9, r10, r11, r12, r13, r14, r15;
	uint64_t rdi, rsi, rbp, rbx, rdx, rax, rcx;
	uint64_t rsp, rip, eflags;
};

extern void hookcoreTrapHandler(int sig, void *ctx, void *siginfo, void *ucontext);

static void hookcore_load_ctx(ucontext_t *uc, struct instrument_ctx *out) {
	_STRUCT_X86_THREAD_STATE64 *ss = &uc->uc_mcontext->__ss;
	out->r8 = ss->__r8;
	out->r9 = ss->__r9;
	out->r10 = ss->__r10;
	out->r11 = ss->__r11;
	out->r12 = ss->__r12;
	out->r13 = ss->__r13;
	out->r14 = ss->__r14;
	out->r15 = ss->__r15;
	out->rdi = ss->__rdi;
	out->rsi = ss->__rsi;
	out->rbp = ss->__rbp;
	out->rbx = ss->__rbx;
	out->rdx = ss->__rdx;
	out->rax = ss->__rax;
	out->rcx = ss->__rcx;
	out->rsp = ss->__rsp;
	out->rip = ss->__rip;
	out->eflags = ss->__rflags;
}

static void hookcore_store_ctx(ucontext_t *uc, struct instrument_ctx *in) {
	_STRUCT_X86_THREAD_STATE64 *ss = &uc->uc_mcontext->__ss;
	ss->__r8 = in->r8;
	ss->__r9 = in->r9;
	ss->__r10 = in->r10;
	ss->__r11 = in->r11;
	ss->__r12 = in->r12;
	ss->__r13 = in->r13;
	ss->__r14 = in->r14;
	ss->__r15 = in->r15;
	ss->__rdi = in->rdi;
	ss->__rsi = in->rsi;
	ss->__rbp = in->rbp;
	ss->__rbx = in->rbx;
	ss->__rdx = in->rdx;
	ss->__rax = in->rax;
	ss->__rcx = in->rcx;
	ss->__rsp = in->rsp;
	ss->__rip = in->rip;
	ss->__rflags = in->eflags;
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
