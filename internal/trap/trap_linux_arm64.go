//go:build linux && arm64

package trap

/*
#include <signal.h>
#include <string.h>
#include <stdint.h>
#include <ucontext.h>

// instrument_ctx mirrors ctxview.Context's field layout exactly (31 GPRs,
// sp, pc, cpsr, pad) so Go can reinterpret a *C.struct_instrument_ctx as a
// *ctxview.Context via unsafe.Pointer with no translation step.
struct instrument_ctx {
	uint64_t x[31];
	uint64_t sp;
	uint64_t pc;
	uint32_t cpsr;
	uint32_t pad;
};

extern void hookcoreTrapHandler(int sig, void *ctx, void *siginfo, void *ucontext);

static void hookcore_load_ctx(ucontext_t *uc, struct instrument_ctx *out) {
	mcontext_t *mc = &uc->uc_mcontext;
	memcpy(out->x, mc->regs, sizeof(out->x));
	out->sp = mc->sp;
	out->pc = mc->pc;
	out->cpsr = (uint32_t)mc->pstate;
	out->pad = 0;
}

static void hookcore_store_ctx(ucontext_t *uc, struct instrument_ctx *in) {
	mcontext_t *mc = &uc->uc_mcontext;
	memcpy(mc->regs, in->x, sizeof(in->x));
	mc->sp = in->sp;
	mc->pc = in->pc;
	mc->pstate = in->cpsr;
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
