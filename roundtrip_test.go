package hookcore

import (
	"bytes"
	"testing"

	"github.com/xyproto/hookcore/internal/patcher"
	"github.com/xyproto/hookcore/internal/registry"
)

// TestPatchBytesRoundTrip exercises spec.md §8's round-trip property: patch
// bytes in, patch the returned original bytes back, and the page is
// bit-identical to before the first call.
func TestPatchBytesRoundTrip(t *testing.T) {
	addr := allocateExecPage(t, testFuncCode)
	site := addr + testEntryOffset

	newBytes := patcher.ReadBytes(site, 4)
	for i := range newBytes {
		newBytes[i] ^= 0xFF
	}

	old, err := PatchBytes(site, newBytes)
	if err != nil {
		t.Fatalf("PatchBytes: %v", err)
	}
	if !bytes.Equal(patcher.ReadBytes(site, 4), newBytes) {
		t.Fatalf("memory at site does not reflect the new bytes after PatchBytes")
	}

	restored, err := PatchBytes(site, old)
	if err != nil {
		t.Fatalf("PatchBytes (restore): %v", err)
	}
	if !bytes.Equal(restored, newBytes) {
		t.Fatalf("PatchBytes (restore) returned %x, want %x", restored, newBytes)
	}
	if !bytes.Equal(patcher.ReadBytes(addr, len(testFuncCode)), testFuncCode) {
		t.Fatalf("page is not bit-identical to testFuncCode after the round trip")
	}
}

// TestPatchcodeRoundTripAndOriginalOpcode exercises spec.md §8's first two
// universally-quantified properties together: original_opcode after
// patchcode returns what was there immediately before, and patching back
// restores the page exactly.
func TestPatchcodeRoundTripAndOriginalOpcode(t *testing.T) {
	addr := allocateExecPage(t, testFuncCode)
	site := addr + testEntryOffset

	before, err := Patchcode(site, testReplacementOpcode)
	if err != nil {
		t.Fatalf("Patchcode: %v", err)
	}

	opcode, ok := OriginalOpcode(site)
	if !ok || opcode != before {
		t.Fatalf("OriginalOpcode after Patchcode = (%#x, %v), want (%#x, true)", opcode, ok, before)
	}

	restored, err := Patchcode(site, before)
	if err != nil {
		t.Fatalf("Patchcode (restore): %v", err)
	}
	if restored != testReplacementOpcode {
		t.Fatalf("Patchcode (restore) returned %#x, want %#x", restored, testReplacementOpcode)
	}

	if !bytes.Equal(patcher.ReadBytes(addr, len(testFuncCode)), testFuncCode) {
		t.Fatalf("page is not bit-identical to testFuncCode after the round trip")
	}

	// original_opcode now reflects what the restore call itself
	// overwrote, the replacement opcode, not the very first original,
	// matching the per-call contract in spec.md §4.3.
	opcode, ok = OriginalOpcode(site)
	if !ok || opcode != testReplacementOpcode {
		t.Fatalf("OriginalOpcode after restore = (%#x, %v), want (%#x, true)", opcode, ok, testReplacementOpcode)
	}
}

// TestOriginalOpcodeUnknownAddress covers the "never patched" ok=false
// path.
func TestOriginalOpcodeUnknownAddress(t *testing.T) {
	if _, ok := OriginalOpcode(0xBAAD_F00D_0000); ok {
		t.Fatalf("OriginalOpcode on an address hookcore never touched returned ok=true")
	}
}

// TestInstrumentThenUnhookRestoresOriginalBytes installs a trap (without
// ever triggering it; no code on the page actually executes the patched
// instruction during this test) and confirms Unhook puts the original
// bytes back and retires the instrumentation slot.
func TestInstrumentThenUnhookRestoresOriginalBytes(t *testing.T) {
	addr := allocateExecPage(t, testFuncCode)
	site := addr + testEntryOffset

	if err := Instrument(site, func(address uint64, ctx *HookContext) {}); err != nil {
		t.Fatalf("Instrument: %v", err)
	}

	if bytes.Equal(patcher.ReadBytes(addr, len(testFuncCode)), testFuncCode) {
		t.Fatalf("page still matches testFuncCode after Instrument, trap was not installed")
	}

	if err := Unhook(site); err != nil {
		t.Fatalf("Unhook: %v", err)
	}

	if !bytes.Equal(patcher.ReadBytes(addr, len(testFuncCode)), testFuncCode) {
		t.Fatalf("page is not bit-identical to testFuncCode after Unhook")
	}
}

// TestInstrumentIdempotentUpdatesCallback covers spec.md §8's idempotence
// property at the public-surface level: instrumenting the same address
// twice updates the callback in place rather than erroring, and leaves the
// bytes at the address unchanged by the second call.
func TestInstrumentIdempotentUpdatesCallback(t *testing.T) {
	addr := allocateExecPage(t, testFuncCode)
	site := addr + testEntryOffset

	calls1, calls2 := 0, 0
	if err := Instrument(site, func(address uint64, ctx *HookContext) { calls1++ }); err != nil {
		t.Fatalf("Instrument (first): %v", err)
	}
	defer Unhook(site)

	afterFirst := patcher.ReadBytes(addr, len(testFuncCode))

	if err := Instrument(site, func(address uint64, ctx *HookContext) { calls2++ }); err != nil {
		t.Fatalf("Instrument (second): %v", err)
	}

	if !bytes.Equal(patcher.ReadBytes(addr, len(testFuncCode)), afterFirst) {
		t.Fatalf("re-Instrument changed the bytes at the address")
	}

	slot, ok := registry.Lookup(site)
	if !ok {
		t.Fatalf("Lookup(%#x) found no slot after re-Instrument", site)
	}
	slot.Callback(site, nil)
	if calls1 != 0 || calls2 != 1 {
		t.Errorf("after re-Instrument, the slot's callback ran cb1=%d cb2=%d, want cb1=0 cb2=1", calls1, calls2)
	}
}
