package lz78

import (
	"bytes"
	"testing"
)

func TestBitStream_WriteReadRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		bits  []int // 0 or 1, each written with its own one-bit WriteBits call
	}{
		{name: "single-bit", bits: []int{1}},
		{name: "byte-aligned", bits: []int{1, 0, 1, 0, 1, 0, 1, 0}},
		{name: "odd-length", bits: []int{1, 1, 0, 1, 1}},
		{name: "three-bytes-plus-bits", bits: []int{1, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := OpenBitWriter(&buf, 64)
			if err != nil {
				t.Fatalf("OpenBitWriter: %v", err)
			}
			for _, bit := range tc.bits {
				src := []byte{byte(bit)}
				n, err := w.WriteBits(src, 1, 0)
				if err != nil || n != 1 {
					t.Fatalf("WriteBits bit=%d: n=%d err=%v", bit, n, err)
				}
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			r, err := OpenBitReader(bytes.NewReader(buf.Bytes()), 64)
			if err != nil {
				t.Fatalf("OpenBitReader: %v", err)
			}
			for i, want := range tc.bits {
				dst := []byte{0}
				n, err := r.ReadBits(dst, 1, 0)
				if err != nil || n != 1 {
					t.Fatalf("ReadBits[%d]: n=%d err=%v", i, n, err)
				}
				got := int(dst[0] & 1)
				if got != want {
					t.Fatalf("bit[%d] = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestBitStream_MultiBitWidths(t *testing.T) {
	widths := []uint8{9, 13, 21}
	values := []uint32{0, 1, 260, 511, 4095, 1048575}

	var buf bytes.Buffer
	w, err := OpenBitWriter(&buf, 32)
	if err != nil {
		t.Fatalf("OpenBitWriter: %v", err)
	}

	var written []struct {
		v uint32
		w uint8
	}
	for _, width := range widths {
		for _, v := range values {
			vv := v % (1 << width)
			b := [4]byte{byte(vv), byte(vv >> 8), byte(vv >> 16), byte(vv >> 24)}
			n, err := w.WriteBits(b[:], int(width), 0)
			if err != nil || n != int(width) {
				t.Fatalf("WriteBits v=%d width=%d: n=%d err=%v", vv, width, n, err)
			}
			written = append(written, struct {
				v uint32
				w uint8
			}{vv, width})
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenBitReader(bytes.NewReader(buf.Bytes()), 32)
	if err != nil {
		t.Fatalf("OpenBitReader: %v", err)
	}
	for i, want := range written {
		var b [4]byte
		n, err := r.ReadBits(b[:], int(want.w), 0)
		if err != nil || n != int(want.w) {
			t.Fatalf("ReadBits[%d]: n=%d err=%v", i, n, err)
		}
		got := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		if got != want.v {
			t.Fatalf("value[%d] = %d, want %d", i, got, want.v)
		}
	}
}

func TestBitStream_WouldBlockPartialWrite(t *testing.T) {
	fw := &flakyWriter{}
	w, err := OpenBitWriter(fw, 8)
	if err != nil {
		t.Fatalf("OpenBitWriter: %v", err)
	}

	data := bytes.Repeat([]byte{0xAA, 0x55}, 20)
	for i := 0; i < len(data)*8; i++ {
		bit := (data[i/8] >> uint(i%8)) & 1
		src := []byte{bit}
		if _, err := w.WriteBits(src, 1, 0); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if fw.buf.Len() == 0 {
		t.Fatalf("expected some bytes to reach the flaky writer despite EAGAIN injection")
	}
}

func TestOpenBitStream_RejectsBadCapacity(t *testing.T) {
	if _, err := OpenBitWriter(&bytes.Buffer{}, 0); err != ErrBufferSize {
		t.Fatalf("capacity=0: got %v, want ErrBufferSize", err)
	}
	if _, err := OpenBitWriter(&bytes.Buffer{}, 7); err != ErrBufferSize {
		t.Fatalf("capacity=7: got %v, want ErrBufferSize", err)
	}
	if _, err := OpenBitReader(bytes.NewReader(nil), -8); err != ErrBufferSize {
		t.Fatalf("capacity=-8: got %v, want ErrBufferSize", err)
	}
}

func TestBitStream_WrongDirectionRejected(t *testing.T) {
	w, _ := OpenBitWriter(&bytes.Buffer{}, 8)
	if _, err := w.ReadBits(make([]byte, 1), 1, 0); err != ErrMode {
		t.Fatalf("ReadBits on writer: got %v, want ErrMode", err)
	}

	r, _ := OpenBitReader(bytes.NewReader(nil), 8)
	if _, err := r.WriteBits([]byte{1}, 1, 0); err != ErrMode {
		t.Fatalf("WriteBits on reader: got %v, want ErrMode", err)
	}
}
