// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

// dualCompressDict maintains the compressor's (main, secondary) pair and
// the swap/shadow protocol of §4.D. The compressor drives it one input
// byte at a time through Extend.
type dualCompressDict struct {
	main, secondary *CompressorDict
}

func newDualCompressDict(dSize uint32) *dualCompressDict {
	return &dualCompressDict{
		main:      newCompressorDict(dSize),
		secondary: newCompressorDict(dSize),
	}
}

// Extend feeds label into main, shadowing into secondary once main is over
// threshold, and swapping main/secondary once main fills (§4.D rules 1-2).
// widthDNext is the dictionary's dNext immediately after this insertion but
// *before* any swap — the value CompressEngine needs to pick the emitted
// code's bit width (bitlen(widthDNext-1)), since a swap would otherwise
// replace it with the freshly-rotated-in dictionary's much smaller dNext.
func (dd *dualCompressDict) Extend(label uint16) (emit bool, code uint32, widthDNext uint32) {
	emit, code = dd.main.Extend(label)
	widthDNext = dd.main.dNext
	if !emit {
		if dd.main.Over() {
			dd.secondary.Extend(label)
		}
		return emit, code, widthDNext
	}

	if dd.main.Full() {
		dd.main, dd.secondary = dd.secondary, dd.main
		dd.main.curNode = int32(label)
		dd.secondary.Reset()
	}
	if dd.main.Over() {
		dd.secondary.Extend(label)
	}
	return emit, code, widthDNext
}

// dNext exposes the current main dictionary's next-code counter.
func (dd *dualCompressDict) dNext() uint32 {
	return dd.main.dNext
}

// dualDecompressDict is the decompressor's mirror of dualCompressDict
// (§4.D). Because the decompressor does not insert one byte at a time, the
// shadowing rule is expanded: every byte of a just-decoded substring is fed
// through a CompressorDict-shaped state machine to keep secondary's
// entries identical to what the compressor would have shadowed.
type dualDecompressDict struct {
	main      *DecompressorDict
	secondary *CompressorDict
}

func newDualDecompressDict(dSize uint32) *dualDecompressDict {
	return &dualDecompressDict{
		main:      newDecompressorDict(dSize),
		secondary: newCompressorDict(dSize),
	}
}

// Emit decodes code through main, shadows the emitted bytes into secondary
// once main is over threshold, and swaps main/secondary once main fills.
func (dd *dualDecompressDict) Emit(code uint32) {
	dd.main.Emit(code)

	if dd.main.Over() {
		for _, b := range dd.main.Bytes() {
			dd.secondary.Extend(uint16(b))
		}
	}

	if dd.main.Full() {
		dd.swap()
	}
}

// swap implements §4.D rule 2 for the decompressor: main is reset (its
// code counters rewound, not its storage wiped) to start right where
// secondary's insertions left off, secondary's used entries are copied
// into main at the same code indices they were assigned during shadowing,
// and secondary is reset.
//
// The original C swap loop additionally used d_sec->d_next as a countdown
// of "entries left to find," decrementing it during the scan; that counter
// is overwritten by the unconditional ht_dictionary_reset right after the
// loop, so it never affects behavior. This rewrite does a plain full scan
// instead of reproducing the vestigial countdown.
func (dd *dualDecompressDict) swap() {
	dd.main.Reset()
	dd.main.dMin = dd.secondary.dNext
	dd.main.dNext = dd.secondary.dNext

	for _, e := range dd.secondary.root {
		if e.used {
			dd.main.root[e.child] = decompressorEntry{parent: e.parent, label: e.label}
		}
	}
	dd.secondary.Reset()
}

// dNext exposes the current main dictionary's next-code counter.
func (dd *dualDecompressDict) dNext() uint32 {
	return dd.main.dNext
}
