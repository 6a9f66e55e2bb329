package protocol

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/danmuck/structmsg/internal/enums"
)

const (
	sizeU8  = 1
	sizeU32 = 4
	sizeU64 = 8
)

// reader walks a caller-owned buffer. Every read is bounds checked and
// byte slices handed out are copies.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) need(field string, n int) error {
	if n < 0 || r.remaining() < n {
		return &UnderrunError{Field: field, Offset: r.off, Need: n, Have: r.remaining()}
	}
	return nil
}

func (r *reader) u8(field string) (uint8, error) {
	if err := r.need(field, sizeU8); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off += sizeU8
	return v, nil
}

func (r *reader) u32(field string) (uint32, error) {
	if err := r.need(field, sizeU32); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off : r.off+sizeU32])
	r.off += sizeU32
	return v, nil
}

func (r *reader) u64(field string) (uint64, error) {
	if err := r.need(field, sizeU64); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off : r.off+sizeU64])
	r.off += sizeU64
	return v, nil
}

func (r *reader) bytes(field string, n int) ([]byte, error) {
	if err := r.need(field, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+n])
	r.off += n
	return out, nil
}

func (r *reader) text(field string, n int) (string, error) {
	if err := r.need(field, n); err != nil {
		return "", err
	}
	raw := r.buf[r.off : r.off+n]
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: field %s at offset %d", ErrInvalidText, field, r.off)
	}
	r.off += n
	return string(raw), nil
}

func (r *reader) rest() []byte {
	out := make([]byte, r.remaining())
	copy(out, r.buf[r.off:])
	r.off = len(r.buf)
	return out
}

type writer struct {
	buf []byte
}

func newWriter(size int) *writer {
	return &writer{buf: make([]byte, 0, size)}
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

// fixed writes b truncated or zero padded to exactly width bytes.
func (w *writer) fixed(b []byte, width int) {
	if len(b) > width {
		b = b[:width]
	}
	w.buf = append(w.buf, b...)
	for i := len(b); i < width; i++ {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) bytes() []byte {
	return w.buf
}

func resolveEnum(field string, d enums.Domain, raw uint32) error {
	if _, ok := d.Resolve(raw); !ok {
		return &EnumError{Field: field, Domain: d.Name(), Value: raw}
	}
	return nil
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
