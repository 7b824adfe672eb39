// Package registry holds hookcore's fixed-capacity hook-slot table and the
// parallel original-opcode cache. Both are process-global: the signal
// dispatcher must be able to reach them from signal context, so, per
// spec.md §5 and §9, they are package-level state rather than an owned
// object threaded through every call. Registration is the caller's
// responsibility to serialize; the dispatcher only ever reads a snapshot it
// copies out by value before invoking a callback.
package registry

import (
	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/trampoline"
)

// Capacity is the fixed size of both the slot table and the opcode cache.
const Capacity = 256

// Callback is the signature user code registers for instrumentation traps.
type Callback func(address uint64, ctx *ctxview.Context)

// Slot is one entry of the hook registry.
type Slot struct {
	Used            bool
	Address         uint64
	OriginalBytes   [16]byte
	OriginalLen     int
	StepLen         int
	Callback        Callback
	ExecuteOriginal bool
	TrampolinePC    uint64
	// ReturnToCaller marks an inline-hook function detour: on trap, the
	// dispatcher resumes at the caller's saved return address instead of
	// address+StepLen (spec.md §4.4 step 8). Instrument/InstrumentNoOriginal
	// slots leave this false.
	ReturnToCaller bool
}

var slots [Capacity]Slot

func findIndex(address uint64) int {
	for i := range slots {
		if slots[i].Used && slots[i].Address == address {
			return i
		}
	}
	return -1
}

// Lookup returns a value copy of the slot at address, so the caller
// (typically the signal dispatcher) observes a consistent snapshot even if
// a concurrent Register call is racing with the read.
func Lookup(address uint64) (Slot, bool) {
	idx := findIndex(address)
	if idx < 0 {
		return Slot{}, false
	}
	return slots[idx], true
}

// Register installs or updates the slot for address.
//
// If a slot already exists, its callback and execute-original flag are
// updated in place; a trampoline is synthesized lazily, only the first time
// the slot switches into replay mode. Otherwise a free slot is allocated, a
// trampoline is synthesized eagerly iff executeOriginal, and the record is
// populated. Fails with ErrInstrumentSlotsFull when no free slot remains.
//
// Not internally locked: per spec.md §5, callers must serialize concurrent
// registration themselves.
func Register(address uint64, originalBytes []byte, stepLen int, cb Callback, executeOriginal bool) error {
	if idx := findIndex(address); idx >= 0 {
		slot := slots[idx]
		slot.Callback = cb
		slot.ExecuteOriginal = executeOriginal

		if executeOriginal && slot.TrampolinePC == 0 {
			pc, err := trampoline.Create(address, slot.OriginalBytes[:slot.OriginalLen])
			if err != nil {
				return err
			}
			slot.TrampolinePC = pc
		}

		slots[idx] = slot
		return nil
	}

	for i := range slots {
		if slots[i].Used {
			continue
		}

		var trampolinePC uint64
		if executeOriginal {
			pc, err := trampoline.Create(address, originalBytes)
			if err != nil {
				return err
			}
			trampolinePC = pc
		}

		var slot Slot
		slot.Used = true
		slot.Address = address
		slot.OriginalLen = copy(slot.OriginalBytes[:], originalBytes)
		slot.StepLen = stepLen
		slot.Callback = cb
		slot.ExecuteOriginal = executeOriginal
		slot.TrampolinePC = trampolinePC
		slots[i] = slot
		return nil
	}

	return herr.New(herr.ErrInstrumentSlotsFull)
}

// MarkReturnToCaller flips the ReturnToCaller flag on an existing slot, used
// by InlineHookReplace detours installed through the instrumentation path
// (as opposed to InlineHook's direct branch patch, which never touches the
// slot table).
func MarkReturnToCaller(address uint64) {
	if idx := findIndex(address); idx >= 0 {
		slots[idx].ReturnToCaller = true
	}
}

// Unregister clears the slot for address, if any, so subsequent traps no
// longer match it. It does not touch the trampoline page (trampolines are
// leaked for the process lifetime per spec.md §3) or the original bytes
// still installed at address; callers restore those separately.
func Unregister(address uint64) {
	if idx := findIndex(address); idx >= 0 {
		slots[idx] = Slot{}
	}
}

// cacheEntry is one record of the original-opcode cache: a parallel table,
// independent of the slot table, that serves original_opcode queries after
// Patchcode/PatchBytes/InlineHook even when no instrumentation slot exists
// for the address.
type cacheEntry struct {
	used    bool
	address uint64
	opcode  uint32
}

var cache [Capacity]cacheEntry
var cacheNext int

// CacheOpcode records the original opcode observed at address before a
// non-instrumentation patch (Patchcode, PatchBytes, InlineHook) overwrote
// it. On overflow, the oldest-written slot is evicted round-robin.
func CacheOpcode(address uint64, opcode uint32) {
	for i := range cache {
		if cache[i].used && cache[i].address == address {
			cache[i].opcode = opcode
			return
		}
	}
	for i := range cache {
		if !cache[i].used {
			cache[i] = cacheEntry{used: true, address: address, opcode: opcode}
			return
		}
	}
	cache[cacheNext] = cacheEntry{used: true, address: address, opcode: opcode}
	cacheNext = (cacheNext + 1) % Capacity
}

func cachedOpcode(address uint64) (uint32, bool) {
	for i := range cache {
		if cache[i].used && cache[i].address == address {
			return cache[i].opcode, true
		}
	}
	return 0, false
}

// OriginalOpcode returns the original opcode for address, checking the
// opcode cache first and falling back to a registered instrumentation
// slot's saved bytes.
func OriginalOpcode(address uint64) (uint32, bool) {
	if opcode, ok := cachedOpcode(address); ok {
		return opcode, true
	}

	slot, ok := Lookup(address)
	if !ok || slot.OriginalLen < 4 {
		return 0, false
	}
	b := slot.OriginalBytes
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, true
}
