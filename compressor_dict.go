// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

// noNode marks curNode as "no pending prefix" (start of a new phrase).
const noNode = -1

// ht_entry in the original: an open-addressed hash table entry mapping
// (parent, label) to a child code.
type compressorEntry struct {
	used   bool
	parent uint32
	label  uint16
	child  uint32
}

// CompressorDict is the compressor's dictionary: an open-addressed hash
// table over (parent_code, label_byte) pairs, built one byte at a time via
// Extend. It implements §4.B of the specification.
type CompressorDict struct {
	root    []compressorEntry
	curNode int32 // the node being extended; noNode if starting a new phrase
	prevNode int32
	dSize   uint32
	dThr    uint32
	dNext   uint32
}

// newCompressorDict allocates a dictionary with dSize slots (clamped to
// (DictSizeMin, DictSizeMax]).
func newCompressorDict(dSize uint32) *CompressorDict {
	dSize = clampDictSize(dSize)
	return &CompressorDict{
		root:    make([]compressorEntry, dSize),
		curNode: noNode,
		dSize:   dSize,
		dThr:    dictThreshold(dSize),
		dNext:   DictSizeMin,
	}
}

// Reset zeroes the table and restarts the dictionary at its initial state,
// without reallocating (§4.B "reset").
func (d *CompressorDict) Reset() {
	for i := range d.root {
		d.root[i] = compressorEntry{}
	}
	d.dNext = DictSizeMin
	d.curNode = noNode
}

// hash computes the Bernstein-style hash of (cur_node, label), exactly as
// the original: the key packs label into the high bits above bitlen(d_size)
// and cur_node into the low bits, then four rounds of hash = hash*33+byte.
func (d *CompressorDict) hash(curNode int32, label uint16) uint32 {
	key := (uint32(label) << bitlen(d.dSize)) + uint32(curNode)
	var h uint32
	for i := 0; i < 4; i++ {
		h = (h<<5 + h) + key&0xFF
		key >>= 8
	}
	return h % d.dSize
}

// Extend absorbs label into the current phrase. If the (curNode, label)
// pair is already in the dictionary, it just advances curNode and reports
// that nothing should be emitted. Otherwise it inserts a new entry for the
// pair (child = dNext) and reports the code to emit: the node that was
// being extended before this byte arrived (prevNode). The emitted code's
// bit width is chosen by the caller from dNext *after* this call, so the
// decoder — which computes its width from its own dNext before reading —
// ends up agreeing with the encoder (§4.E).
func (d *CompressorDict) Extend(label uint16) (emit bool, code uint32) {
	if d.curNode == noNode {
		d.curNode = int32(label)
		return false, 0
	}

	hash := d.hash(d.curNode, label)
	for d.root[hash].used {
		if d.root[hash].parent == uint32(d.curNode) && d.root[hash].label == label {
			d.curNode = int32(d.root[hash].child)
			return false, 0
		}
		hash = (hash + 1) % d.dSize
	}

	d.prevNode = d.curNode
	d.root[hash] = compressorEntry{
		used:   true,
		parent: uint32(d.curNode),
		label:  label,
		child:  d.dNext,
	}
	d.curNode = int32(label)
	d.dNext++

	return true, uint32(d.prevNode)
}

// Full reports whether the dictionary has assigned its last available
// code (dNext has reached dSize). dualCompressDict checks it right after
// each allocating Extend and swaps as soon as it is true.
func (d *CompressorDict) Full() bool {
	return d.dNext == d.dSize
}

// Over reports whether dNext has crossed the shadowing threshold (§4.D
// rule 1).
func (d *CompressorDict) Over() bool {
	return d.dNext >= d.dThr
}
