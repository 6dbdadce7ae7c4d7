// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

import "errors"

// Sentinel errors returned by the bit stream and the engines.
var (
	// ErrWouldBlock is returned by a BitStream operation, or by Compress/
	// Decompress, when the underlying reader or writer cannot make progress
	// right now. The caller should retry the same call once the underlying
	// descriptor is ready; all engine state is preserved across the error.
	ErrWouldBlock = errors.New("lz78: would block")

	// ErrMode is returned when a BitStream operation is invoked against a
	// stream opened for the other direction (e.g. ReadBits on a stream
	// opened with OpenBitWriter).
	ErrMode = errors.New("lz78: wrong mode for this operation")

	// ErrCorruptStream is returned when the decoder reads a code that
	// cannot correspond to any valid dictionary state.
	ErrCorruptStream = errors.New("lz78: corrupt compressed stream")

	// ErrBufferSize is returned when a BitStream is opened with a capacity
	// that is not a whole number of bytes.
	ErrBufferSize = errors.New("lz78: buffer capacity must be a multiple of 8 bits")

	// ErrClosed is returned by an operation attempted on a BitStream after
	// Close has already run.
	ErrClosed = errors.New("lz78: bit stream is closed")
)
