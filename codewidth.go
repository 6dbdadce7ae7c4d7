// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

// bitlen returns the number of bits needed to represent v, i.e. ⌈log2(v+1)⌉
// for v>0 and 0 for v==0. This is the original lz78.c's bitlen: it is the
// *position of the highest set bit plus one*, not a ceil-log2 of v itself —
// callers that want the width for "up to and including v" pass v, and
// callers that want "strictly less than v" pass v-1. Both usages appear in
// this package, exactly mirroring the original lz78.c.
func bitlen(v uint32) uint8 {
	var n uint8
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

// startWidth is the bit width of the START sentinel: ⌈log2(DictSizeMin+1)⌉.
func startWidth() uint8 {
	return bitlen(DictSizeMin)
}

// sizeWidth is the bit width of the negotiated dictionary size field:
// ⌈log2(DictSizeMax+1)⌉.
func sizeWidth() uint8 {
	return bitlen(DictSizeMax)
}

// dataWidth returns the width at which a code is read or written while the
// dictionary's next-code counter is dNext: bitlen(dNext), i.e.
// ⌈log2(dNext+1)⌉. The decoder calls this with its dNext before each read;
// the encoder writes each data code at bitlen(dNext-1) with dNext taken
// after allocation, which is the same value, and writes EOF/STOP at
// dataWidth(dNext), so the two sides agree (§4.E: "width agreement"). The
// width is not the minimal one: the largest data code the decoder can
// receive at this point is dNext-1, so when dNext is a power of two one bit
// more is used than that code needs.
func dataWidth(dNext uint32) uint8 {
	return bitlen(dNext)
}
