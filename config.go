// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

// Dictionary size bounds and the default buffer capacity. A configured
// dictionary size is clamped to (DictSizeMin, DictSizeMax].
const (
	DictSizeMin     = 260
	DictSizeDefault = 4096
	DictSizeMax     = 1048576

	// bufCapacityDefault is the default BitStream buffer size in bits: 1 MiB
	// of byte buffer, matching the original bitio.c's B_SIZE_DEFAULT (which
	// is specified in bytes, 1048576).
	bufCapacityDefault = 8 << 20
)

// Reserved codes. User byte labels occupy 0..255; the first code the
// dictionaries ever assign to a new entry is DictSizeMin.
//
// The original bitio/lz78.c also reserves 257 (DICT_CODE_SIZE) as a second
// trigger for the same "reset, then read a size field" handling as START —
// used there to re-announce a dictionary size mid-stream. This package's
// streams only ever negotiate a size once, immediately after START, so that
// second trigger has no wire state to occupy here and is intentionally not
// declared.
const (
	codeEOF   = 256
	codeStart = 258
	codeStop  = 259
)

// clampDictSize bounds d to (DictSizeMin, DictSizeMax], mirroring the
// original's DICT_LIMIT macro.
func clampDictSize(d uint32) uint32 {
	switch {
	case d < DictSizeMin+1:
		return DictSizeMin + 1
	case d > DictSizeMax:
		return DictSizeMax
	default:
		return d
	}
}

// dictThreshold returns the occupancy (80% of d) at which new entries start
// being shadowed into the secondary dictionary.
func dictThreshold(d uint32) uint32 {
	return d * 8 / 10
}

// Config is the engine configuration record (§6 of the specification this
// package implements): mode selection lives in which constructor the caller
// calls (NewCompressEngine vs NewDecompressEngine), so Config only carries
// the compressor's settings: the dictionary size it announces in the
// stream and its BitStream buffer size. NewDecompressEngine takes no Config.
type Config struct {
	// DictSize is the requested main dictionary size, compressor side
	// only; clamped to (DictSizeMin, DictSizeMax]. Zero selects
	// DictSizeDefault. The decompressor always learns the negotiated size
	// from the stream itself (§4.G) and ignores this field.
	DictSize uint32

	// BufCapacityBits is the BitStream buffer size in bits; must be a
	// multiple of 8. Zero selects bufCapacityDefault.
	BufCapacityBits uint32
}

// ApplyDefaults fills in zero fields with their defaults and clamps
// DictSize, returning the adjusted copy.
func (c Config) ApplyDefaults() Config {
	if c.DictSize == 0 {
		c.DictSize = DictSizeDefault
	}
	c.DictSize = clampDictSize(c.DictSize)

	if c.BufCapacityBits == 0 {
		c.BufCapacityBits = bufCapacityDefault
	}
	return c
}
