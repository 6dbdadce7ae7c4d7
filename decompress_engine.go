// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

import (
	"fmt"
	"io"
)

// decompressPhase enumerates the decompressor's state machine (§4.G),
// mirroring CompressEngine's phases on the read side.
type decompressPhase int

const (
	dePhaseReadStart decompressPhase = iota
	dePhaseReadSize
	dePhaseRunning
	dePhaseFlushing
	dePhaseDone
)

// DecompressEngine drives code-in → byte-out decompression (§4.G). Like
// CompressEngine it is resumable: any Decompress call may return
// ErrWouldBlock and should be retried later with the same src/dst.
type DecompressEngine struct {
	dict  *dualDecompressDict
	bs    *BitStream
	phase decompressPhase

	dSize uint32 // negotiated from the SIZE code, once read

	// pendingWidth/pendingRead track an in-progress ReadBits call for the
	// code currently being assembled.
	pendingWidth uint8
	pendingRead  uint8
	codeBuf      [4]byte

	// flushOff tracks how many bytes of the dictionary's most recent Emit
	// output have already been written to dst, for resumption after a
	// would-block mid-flush. afterFlush is the phase to resume once the
	// flush completes; both paths into dePhaseFlushing (a just-decoded
	// phrase, and EOF with STOP still to be read) resume dePhaseRunning.
	flushOff   int
	afterFlush decompressPhase
}

// NewDecompressEngine creates a decompressor. The dictionary size is not
// known until the SIZE code is read from the stream, so construction takes
// no configuration.
func NewDecompressEngine() *DecompressEngine {
	return &DecompressEngine{phase: dePhaseReadStart}
}

// Decompress reads a compressed code stream from src and writes the
// original bytes to dst, until the STOP sentinel is read. It may be called
// repeatedly on ErrWouldBlock to resume where it left off.
func (e *DecompressEngine) Decompress(dst io.Writer, src io.Reader) error {
	if e.bs == nil {
		bs, err := OpenBitReader(src, bufCapacityDefault)
		if err != nil {
			return fmt.Errorf("lz78: open bit reader: %w", err)
		}
		e.bs = bs
	}

	for {
		switch e.phase {
		case dePhaseReadStart:
			code, ok, err := e.readCode(startWidth())
			if err != nil {
				return err
			}
			if !ok {
				return ErrWouldBlock
			}
			if code != codeStart {
				return fmt.Errorf("%w: missing start marker", ErrCorruptStream)
			}
			e.phase = dePhaseReadSize

		case dePhaseReadSize:
			size, ok, err := e.readCode(sizeWidth())
			if err != nil {
				return err
			}
			if !ok {
				return ErrWouldBlock
			}
			e.dSize = clampDictSize(size)
			e.dict = newDualDecompressDict(e.dSize)
			e.phase = dePhaseRunning

		case dePhaseRunning:
			width := dataWidth(e.dict.dNext())
			code, ok, err := e.readCode(width)
			if err != nil {
				return err
			}
			if !ok {
				return ErrWouldBlock
			}
			if code == codeEOF {
				// Nothing new was decoded, but any bytes from the last Emit
				// might still be sitting unflushed if an earlier call
				// would-blocked mid-drain; finish draining, then read STOP.
				e.afterFlush = dePhaseRunning
				e.phase = dePhaseFlushing
				continue
			}
			if code == codeStop {
				e.phase = dePhaseDone
				continue
			}
			if code >= e.dict.dNext() {
				return fmt.Errorf("%w: code %d exceeds dictionary (dNext=%d)", ErrCorruptStream, code, e.dict.dNext())
			}
			e.dict.Emit(code)
			e.flushOff = 0
			e.afterFlush = dePhaseRunning
			e.phase = dePhaseFlushing

		case dePhaseFlushing:
			done, err := e.flushDecoded(dst)
			if err != nil {
				return err
			}
			if !done {
				return ErrWouldBlock
			}
			e.phase = e.afterFlush

		case dePhaseDone:
			return nil
		}
	}
}

// readCode assembles a width-bit code from the BitStream, across as many
// calls as needed if the source would-blocks partway through. ok is false
// when the code is not yet complete and the caller should return
// ErrWouldBlock. ReadBits does not tell a would-block apart from end of
// input, so a stream that ends mid-code is not reported as
// ErrCorruptStream: it keeps returning ok false.
func (e *DecompressEngine) readCode(width uint8) (uint32, bool, error) {
	if e.pendingWidth == 0 {
		e.pendingWidth = width
		e.pendingRead = 0
		e.codeBuf = [4]byte{}
	}

	remaining := int(e.pendingWidth) - int(e.pendingRead)
	n, err := e.bs.ReadBits(e.codeBuf[e.pendingRead/8:], remaining, int(e.pendingRead%8))
	if err != nil {
		return 0, false, fmt.Errorf("lz78: read: %w", err)
	}
	e.pendingRead += uint8(n)

	if int(e.pendingRead) < int(e.pendingWidth) {
		// Incomplete: either the source would-blocked or hit EOF mid-code.
		// Both cases are reported the same way — the caller stops and
		// returns ErrWouldBlock; a genuinely truncated stream just keeps
		// returning no progress forever, which is the caller's concern.
		return 0, false, nil
	}

	code := uint32(e.codeBuf[0]) | uint32(e.codeBuf[1])<<8 | uint32(e.codeBuf[2])<<16 | uint32(e.codeBuf[3])<<24
	e.pendingWidth = 0
	e.pendingRead = 0
	return code, true, nil
}

// flushDecoded writes whatever portion of the dictionary's most recent
// decoded substring has not yet reached dst.
func (e *DecompressEngine) flushDecoded(dst io.Writer) (bool, error) {
	b := e.dict.main.Bytes()
	for e.flushOff < len(b) {
		n, err := dst.Write(b[e.flushOff:])
		if n > 0 {
			e.flushOff += n
		}
		if err != nil {
			if err == ErrWouldBlock {
				return false, nil
			}
			return false, fmt.Errorf("lz78: write: %w", err)
		}
		if n == 0 {
			return false, nil
		}
	}
	return true, nil
}
