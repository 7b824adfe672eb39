//go:build darwin && arm64

package trap

/*
#include <signal.h>
#include <string.h>
#include <stdint.h>
#include <sys/ucontext.h>

extern void hookcoreTrapHandler(int sig, void *ctx, void *siginfo, void *ucontext);

// hookcore_ctx_ptr returns a pointer straight into the kernel's own
// arm_thread_state64_t embedded in the ucontext, matching
// ctxview.FromKernelContext's zero-copy contract: Darwin/arm64 is the one
// platform in the matrix whose kernel register struct is bit-identical to
// ctxview.Context, so there is no scratch buffer to copy in or out of.
static void *hookcore_ctx_ptr(ucontext_t *uc) {
	return &uc->uc_mcontext->__ss;
}

static void hookcore_trampoline(int sig, siginfo_t *info, void *ucv) {
	ucontext_t *uc = (ucontext_t *)ucv;
	hookcoreTrapHandler(sig, hookcore_ctx_ptr(uc), info, ucv);
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
	ctx, writeback := ctxview.FromKernelContext(ctxPtr)
	dispatch(int(sig), ctx, infoPtr, ucPtr)
	writeback()
}
