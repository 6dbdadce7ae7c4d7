package lz78

import "testing"

func TestDualCompressDict_SwapsWhenMainFills(t *testing.T) {
	dSize := DictSizeMin + 5
	dd := newDualCompressDict(uint32(dSize))

	mainBefore := dd.main
	b := uint16(0)
	swapped := false
	for i := 0; i < 4096; i++ {
		dd.main.curNode = noNode
		_, _, _ = dd.Extend(b)
		_, _, _ = dd.Extend(b + 1)
		b += 2
		if dd.main != mainBefore {
			swapped = true
			break
		}
	}
	if !swapped {
		t.Fatalf("main/secondary never swapped after filling main")
	}
}

func TestDualCompressDict_WidthReflectsPreSwapState(t *testing.T) {
	// Regression: widthDNext must be captured before any swap triggered by
	// this very insertion. A dictionary of exactly DictSizeMin+1 entries
	// fills on its very first insertion, so if widthDNext were read after
	// the swap it would report the freshly-rotated-in (much smaller)
	// dictionary's dNext instead of the value the encoder actually used to
	// size this code.
	dSize := DictSizeMin + 1
	dd := newDualCompressDict(uint32(dSize))

	dd.Extend('a')
	emit, _, widthDNext := dd.Extend('b')
	if !emit {
		t.Fatalf("expected an emission when filling a 1-entry dictionary")
	}
	if widthDNext != uint32(dSize) {
		t.Fatalf("widthDNext = %d, want %d (the pre-swap dNext)", widthDNext, dSize)
	}
}

func TestDualDecompressDict_MirrorsCompressSwap(t *testing.T) {
	dSize := uint32(DictSizeMin + 5)
	cd := newDualCompressDict(dSize)
	dd := newDualDecompressDict(dSize)

	input := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	var codes []uint32
	for _, b := range input {
		emit, code, _ := cd.Extend(uint16(b))
		if emit {
			codes = append(codes, code)
		}
	}
	if emit, code, _ := cd.Extend(codeEOF); emit {
		codes = append(codes, code)
	}

	var out []byte
	for _, code := range codes {
		dd.Emit(code)
		out = append(out, dd.main.Bytes()...)
	}

	if string(out) != string(input) {
		t.Fatalf("reconstructed = %q, want %q", out, input)
	}
}
