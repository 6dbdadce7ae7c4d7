// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78/fdio

// Package fdio adapts a non-blocking file descriptor to the io.Reader/
// io.Writer contract the lz78 engines expect, translating EAGAIN/EWOULDBLOCK
// into lz78.ErrWouldBlock instead of looping or sleeping. This is the direct
// analogue of the original bitio.c opening its descriptors with O_NONBLOCK
// and checking errno == EAGAIN after every read(2)/write(2).
package fdio

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/go-lz78/lz78"
)

// File wraps an *os.File opened in non-blocking mode, presenting it as an
// io.Reader and io.Writer whose Read/Write return lz78.ErrWouldBlock instead
// of blocking when the descriptor has no data ready or no buffer space.
type File struct {
	f  *os.File
	fd int
}

// Open opens name with the given flag (os.O_RDONLY, os.O_WRONLY|os.O_CREATE,
// etc.), puts the resulting descriptor into non-blocking mode, and returns
// a File ready for use as a would-block-aware collaborator.
func Open(name string, flag int, perm os.FileMode) (*File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("fdio: open %s: %w", name, err)
	}
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		f.Close()
		return nil, fmt.Errorf("fdio: set non-blocking %s: %w", name, err)
	}
	return &File{f: f, fd: fd}, nil
}

// NewStdin wraps os.Stdin as a non-blocking reader.
func NewStdin() (*File, error) {
	if err := unix.SetNonblock(int(os.Stdin.Fd()), true); err != nil {
		return nil, fmt.Errorf("fdio: set non-blocking stdin: %w", err)
	}
	return &File{f: os.Stdin, fd: int(os.Stdin.Fd())}, nil
}

// NewStdout wraps os.Stdout as a non-blocking writer.
func NewStdout() (*File, error) {
	if err := unix.SetNonblock(int(os.Stdout.Fd()), true); err != nil {
		return nil, fmt.Errorf("fdio: set non-blocking stdout: %w", err)
	}
	return &File{f: os.Stdout, fd: int(os.Stdout.Fd())}, nil
}

// Read implements io.Reader, returning lz78.ErrWouldBlock in place of
// EAGAIN/EWOULDBLOCK. A zero-length, error-free read(2) unambiguously means
// end of file (unlike EAGAIN, which read(2) always reports as an error), so
// it is reported as io.EOF rather than folded into the would-block case.
func (f *File) Read(p []byte) (int, error) {
	n, err := unix.Read(f.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, lz78.ErrWouldBlock
		}
		return 0, fmt.Errorf("fdio: read: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer, returning lz78.ErrWouldBlock in place of
// EAGAIN/EWOULDBLOCK.
func (f *File) Write(p []byte) (int, error) {
	n, err := unix.Write(f.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, lz78.ErrWouldBlock
		}
		return 0, fmt.Errorf("fdio: write: %w", err)
	}
	return n, nil
}

// Close closes the underlying descriptor. Closing the wrapped os.Stdin or
// os.Stdout is the caller's choice — callers that obtained a File via
// NewStdin/NewStdout typically leave it open for the process lifetime.
func (f *File) Close() error {
	return f.f.Close()
}
