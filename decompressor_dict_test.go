package lz78

import "testing"

func TestDecompressorDict_PrefilledSingleByteCodes(t *testing.T) {
	d := newDecompressorDict(DictSizeDefault)
	d.Emit(uint32('Q'))
	got := d.Bytes()
	if len(got) != 1 || got[0] != 'Q' {
		t.Fatalf("Emit('Q') = %v, want single byte 'Q'", got)
	}
}

func TestDecompressorDict_MirrorsCompressorInsertions(t *testing.T) {
	// Build a tiny phrase with the compressor side, then replay the exact
	// code sequence through the decompressor and check the bytes it
	// reconstructs match what was fed in.
	c := newCompressorDict(DictSizeDefault)
	d := newDecompressorDict(DictSizeDefault)

	input := []byte("abcabcabc")
	var codes []uint32

	for _, b := range input {
		emit, code := c.Extend(uint16(b))
		if emit {
			codes = append(codes, code)
		}
	}
	// Force-flush the final in-progress phrase the same way the engine's
	// EOF handling does, using a label value outside the byte range.
	if emit, code := c.Extend(codeEOF); emit {
		codes = append(codes, code)
	}

	var reconstructed []byte
	for _, code := range codes {
		d.Emit(code)
		reconstructed = append(reconstructed, d.Bytes()...)
	}

	if string(reconstructed) != string(input) {
		t.Fatalf("reconstructed = %q, want %q", reconstructed, input)
	}
}

func TestDecompressorDict_KwKCase(t *testing.T) {
	// The classic LZ78/LZW corner case: a code names the entry that was
	// just seeded by the previous Emit call, before its label has been
	// back-patched — code == dNext-1.
	d := newDecompressorDict(DictSizeDefault)

	d.Emit(uint32('A'))
	d.Emit(uint32('B'))

	code := d.dNext - 1
	d.Emit(code)
	if len(d.Bytes()) == 0 {
		t.Fatalf("KwK case produced no bytes")
	}
}

func TestDecompressorDict_FullAndOverThresholds(t *testing.T) {
	size := DictSizeMin + 10
	d := newDecompressorDict(uint32(size))
	if d.dThr != uint32(size)*8/10 {
		t.Fatalf("dThr = %d, want %d", d.dThr, uint32(size)*8/10)
	}
	if d.Full() || d.Over() {
		t.Fatalf("freshly created dictionary must report neither Full nor Over")
	}

	for !d.Full() {
		d.Emit(uint32('x') % d.dNext)
	}
}

func TestDecompressorDict_ResetRestartsCounters(t *testing.T) {
	d := newDecompressorDict(DictSizeDefault)
	d.Emit('a')
	if d.dNext == DictSizeMin {
		t.Fatalf("dNext should have advanced")
	}
	d.Reset()
	if d.dNext != DictSizeMin || d.dMin != DictSizeMin {
		t.Fatalf("Reset: dNext=%d dMin=%d, want both %d", d.dNext, d.dMin, DictSizeMin)
	}
}
