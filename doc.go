// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

/*
Package lz78 implements a streaming LZ78 compressor and decompressor.

The codec is a single-pass, one-token-at-a-time dictionary coder: the
compressor grows a tree of previously-seen byte strings and, when a byte
extends the current phrase past anything in the tree, emits the code of
that longest known prefix and starts the next phrase with that byte; the
decompressor rebuilds the same tree from the code stream. Codes are packed
into a bit stream whose width grows as the dictionary fills (see
dataWidth), bounded by a configurable dictionary size.

Unlike a conventional LZ78 coder that simply resets its dictionary when
full, this package rotates between two dictionaries (main and secondary):
once the main dictionary passes 80% occupancy, every new entry is mirrored
into the secondary as well, so that when main finally fills and the two
are swapped, the new main already holds the most recently useful entries
instead of starting cold. See dualCompressDict and dualDecompressDict.

# Streaming and EAGAIN

Compress and Decompress are built around io.Reader/io.Writer, but either
side may be backed by a non-blocking file descriptor (see the fdio
subpackage). When the underlying source or sink cannot make progress right
now, operations return ErrWouldBlock with all engine state preserved —
callers re-invoke the same call once the descriptor is ready again. There
is no internal retry loop and no blocking wait inside this package.

# Usage

	enc := lz78.NewCompressEngine(lz78.Config{DictSize: lz78.DictSizeDefault})
	err := enc.Compress(dst, src)

	dec := lz78.NewDecompressEngine()
	err := dec.Decompress(dst, src)

Both Compress and Decompress may return ErrWouldBlock; on that error the
engine's state is untouched and the same call should be retried once the
reader/writer can make progress.
*/
package lz78
