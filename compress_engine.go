// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

import (
	"fmt"
	"io"
)

// compressPhase enumerates the compressor's state machine (§4.F). The
// original C implementation folds this state into the dictionary's
// cur_node field (reusing -1/EOF/START/STOP as both a tree-walk pointer
// and an engine phase marker); this rewrite keeps the two concerns
// separate, which is easier to follow and just as resumable.
type compressPhase int

const (
	phaseWriteStart compressPhase = iota
	phaseWriteSize
	phaseRunning
	phaseFlushFinal
	phaseWriteEOF
	phaseWriteStop
	phaseDone
)

// CompressEngine drives byte-in → code-out compression (§4.F). It is a
// resumable state machine: any Compress call may return ErrWouldBlock,
// after which the same engine should be handed the same reader/writer pair
// again once they can make progress. All dictionary and bit-buffer state
// survives across such calls.
type CompressEngine struct {
	cfg   Config
	dict  *dualCompressDict
	bs    *BitStream
	phase compressPhase

	pendingActive  bool
	pendingValue   uint32
	pendingWidth   uint8
	pendingWritten uint8

	readBuf [1]byte
}

// NewCompressEngine creates a compressor for the given configuration.
// Zero-valued fields of cfg take their defaults (§6).
func NewCompressEngine(cfg Config) *CompressEngine {
	cfg = cfg.ApplyDefaults()
	return &CompressEngine{
		cfg:   cfg,
		dict:  newDualCompressDict(cfg.DictSize),
		phase: phaseWriteStart,
	}
}

// Compress reads bytes from src and writes the compressed code stream to
// dst, until src is exhausted. It may be called repeatedly on ErrWouldBlock
// to resume exactly where it left off (§5). On success (io.EOF from src)
// it emits the EOF and STOP sentinels, flushes and closes the underlying
// BitStream, and returns nil.
func (e *CompressEngine) Compress(dst io.Writer, src io.Reader) error {
	if e.bs == nil {
		bs, err := OpenBitWriter(dst, int(e.cfg.BufCapacityBits))
		if err != nil {
			return fmt.Errorf("lz78: open bit writer: %w", err)
		}
		e.bs = bs
	}

	for {
		if e.pendingActive {
			done, err := e.drainPending()
			if err != nil {
				return err
			}
			if !done {
				return ErrWouldBlock
			}
		}

		switch e.phase {
		case phaseWriteStart:
			e.setPending(codeStart, startWidth())
			e.phase = phaseWriteSize

		case phaseWriteSize:
			e.setPending(e.cfg.DictSize, sizeWidth())
			e.phase = phaseRunning

		case phaseRunning:
			b, err := e.readByte(src)
			if err == ErrWouldBlock {
				return ErrWouldBlock
			}
			if err == io.EOF {
				e.phase = phaseFlushFinal
				continue
			}
			if err != nil {
				return fmt.Errorf("lz78: read: %w", err)
			}
			if emit, code, widthDNext := e.dict.Extend(uint16(b)); emit {
				e.setPending(code, bitlen(widthDNext-1))
			}

		case phaseFlushFinal:
			// Force the in-progress phrase to close out, the same way any
			// other byte would, using the reserved EOF code as a label that
			// can never collide with a real input byte.
			if emit, code, widthDNext := e.dict.Extend(codeEOF); emit {
				e.setPending(code, bitlen(widthDNext-1))
			}
			e.phase = phaseWriteEOF

		case phaseWriteEOF:
			e.setPending(codeEOF, dataWidth(e.dict.dNext()))
			e.phase = phaseWriteStop

		case phaseWriteStop:
			e.setPending(codeStop, dataWidth(e.dict.dNext()))
			e.phase = phaseDone

		case phaseDone:
			if err := e.bs.Close(); err != nil {
				if err == ErrWouldBlock {
					return ErrWouldBlock
				}
				return fmt.Errorf("lz78: close: %w", err)
			}
			return nil
		}
	}
}

// setPending queues a code to be written out bit by bit, possibly across
// several Compress calls if the sink would-blocks partway through.
func (e *CompressEngine) setPending(value uint32, width uint8) {
	e.pendingActive = true
	e.pendingValue = value
	e.pendingWidth = width
	e.pendingWritten = 0
}

// drainPending writes as much of the pending code as the BitStream will
// currently accept, reporting whether the whole code has now been written.
func (e *CompressEngine) drainPending() (bool, error) {
	buf := [4]byte{
		byte(e.pendingValue), byte(e.pendingValue >> 8),
		byte(e.pendingValue >> 16), byte(e.pendingValue >> 24),
	}

	remaining := int(e.pendingWidth) - int(e.pendingWritten)
	n, err := e.bs.WriteBits(buf[e.pendingWritten/8:], remaining, int(e.pendingWritten%8))
	if err != nil {
		return false, fmt.Errorf("lz78: write: %w", err)
	}
	e.pendingWritten += uint8(n)

	if int(e.pendingWritten) >= int(e.pendingWidth) {
		e.pendingActive = false
		e.pendingWritten = 0
		return true, nil
	}
	return false, nil
}

// readByte reads the next input byte, translating the underlying reader's
// would-block/EOF signals into the two outcomes the compress loop cares
// about.
func (e *CompressEngine) readByte(src io.Reader) (byte, error) {
	n, err := src.Read(e.readBuf[:])
	if n == 1 {
		return e.readBuf[0], nil
	}
	switch err {
	case ErrWouldBlock:
		return 0, ErrWouldBlock
	case io.EOF:
		return 0, io.EOF
	case nil:
		// A reader returning (0, nil) is making no progress right now;
		// treat it the same as a would-block rather than spinning on it.
		return 0, ErrWouldBlock
	default:
		return 0, err
	}
}

// Destroy releases the engine's dictionaries and the underlying BitStream.
// It is safe to call even if Compress was never invoked.
func (e *CompressEngine) Destroy() error {
	e.dict = nil
	if e.bs != nil {
		return e.bs.Close()
	}
	return nil
}
