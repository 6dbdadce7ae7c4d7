// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

// decompressorEntry is a parent-pointer tree node: one byte string is
// represented by walking parent links down to a pre-filled leaf.
type decompressorEntry struct {
	parent uint32
	label  uint16
}

// DecompressorDict is the decompressor's dictionary (§4.C): a parent-
// pointer tree indexed directly by code, plus a scratch buffer used to
// reconstruct byte strings without an explicit reverse pass.
type DecompressorDict struct {
	root    []decompressorEntry
	dSize   uint32
	dThr    uint32
	dMin    uint32
	dNext   uint32
	scratch []byte

	// offset and nBytes describe the most recently emitted substring:
	// scratch[offset:offset+nBytes] is the decoded bytes in correct order.
	offset uint32
	nBytes uint32
}

// newDecompressorDict allocates a dictionary of dSize entries, pre-filling
// every code below DictSizeMin (the byte values 0..255 and the reserved
// codes 256..259) as a one-entry leaf.
func newDecompressorDict(dSize uint32) *DecompressorDict {
	dSize = clampDictSize(dSize)
	d := &DecompressorDict{
		root:    make([]decompressorEntry, dSize),
		dSize:   dSize,
		dThr:    dictThreshold(dSize),
		dMin:    DictSizeMin,
		dNext:   DictSizeMin,
		scratch: make([]byte, dSize),
	}
	for i := uint32(0); i < DictSizeMin; i++ {
		d.root[i] = decompressorEntry{parent: 0, label: uint16(i)}
	}
	return d
}

// Emit reconstructs the byte string for code, writing it into the scratch
// buffer from the high end downward (so no reverse pass is needed — see
// the package's design notes), handles the KwK corner case, back-patches
// the previous in-progress entry, and seeds a new entry at dNext. After
// Emit returns, Bytes() yields the decoded substring.
func (d *DecompressorDict) Emit(code uint32) {
	last := d.dSize - 1
	i := last
	p := code

	for {
		d.scratch[i] = byte(d.root[p].label)
		i--
		if p < DictSizeMin || i == 0 {
			break
		}
		p = d.root[p].parent
	}
	// i now indexes one slot before the first byte written; i+1 is the
	// start of the decoded substring.

	// KwK case: code names the entry currently being formed, so its last
	// byte is not yet known — it is always the first byte of this same
	// string (the classic LZ78/LZW completion).
	if code >= d.dMin && code == d.dNext-1 {
		d.scratch[last] = d.scratch[i+1]
	}

	// Back-patch the previous in-progress entry with the first byte of the
	// string we just decoded.
	if d.dNext > d.dMin {
		d.root[d.dNext-1].label = uint16(d.scratch[i+1])
	}

	d.nBytes = last - i
	d.offset = last + 1 - d.nBytes
	d.root[d.dNext] = decompressorEntry{parent: code}
	d.dNext++
}

// Bytes returns the substring produced by the most recent Emit call.
func (d *DecompressorDict) Bytes() []byte {
	return d.scratch[d.offset : d.offset+d.nBytes]
}

// Reset restarts the dictionary's code counters without reallocating its
// backing storage. Used when reinitializing a freshly swapped-in
// dictionary's counters (the root/scratch contents are overwritten entry
// by entry as new codes are assigned, not bulk-cleared).
func (d *DecompressorDict) Reset() {
	d.dMin = DictSizeMin
	d.dNext = DictSizeMin
}

// Full reports whether the dictionary has assigned its last code.
func (d *DecompressorDict) Full() bool {
	return d.dNext == d.dSize
}

// Over reports whether dNext has crossed the shadowing threshold.
func (d *DecompressorDict) Over() bool {
	return d.dNext > d.dThr
}
