package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arloliu/canon/buffer"
	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/pool"
)

// LengthPrefixSize is the width of the length prefix that precedes
// variable-width values inside a stream.
const LengthPrefixSize = 4

// Writer appends a sequence of canonical scalars to a pooled buffer.
//
// Fixed-width values are written as-is. BigInt, Decimal and Text values are
// preceded by a 4-byte big-endian length. Tagged values are additionally
// preceded by their 1-byte Kind.
//
// A Writer is not safe for concurrent use. Call Release when done to return
// its buffer to the pool; the Writer must not be used afterwards.
type Writer struct {
	buf   *pool.ByteBuffer
	count int
}

// NewWriter creates a Writer backed by a pooled buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetStreamBuffer()}
}

func (w *Writer) mustBuffer() *pool.ByteBuffer {
	if w.buf == nil {
		panic("writer already released - cannot write after Release()")
	}

	return w.buf
}

// WriteBool appends a 1-byte bool.
func (w *Writer) WriteBool(v bool) {
	_, _ = PutBool(w.mustBuffer().Extend(BoolSize), 0, v)
	w.count++
}

// WriteInt16 appends a 2-byte int16.
func (w *Writer) WriteInt16(v int16) {
	_, _ = PutInt16(w.mustBuffer().Extend(Int16Size), 0, v)
	w.count++
}

// WriteInt32 appends a 4-byte int32.
func (w *Writer) WriteInt32(v int32) {
	_, _ = PutInt32(w.mustBuffer().Extend(Int32Size), 0, v)
	w.count++
}

// WriteInt64 appends an 8-byte int64.
func (w *Writer) WriteInt64(v int64) {
	_, _ = PutInt64(w.mustBuffer().Extend(Int64Size), 0, v)
	w.count++
}

// WriteFloat64 appends an 8-byte float64.
func (w *Writer) WriteFloat64(v float64) {
	_, _ = PutFloat64(w.mustBuffer().Extend(Float64Size), 0, v)
	w.count++
}

// WriteBigInt appends a length-prefixed big integer.
func (w *Writer) WriteBigInt(v *big.Int) {
	// fails only past the 4 GiB length prefix
	_ = w.writeScalar(BigInt{Value: v})
}

// WriteDecimal appends a length-prefixed decimal.
func (w *Writer) WriteDecimal(d decimal.Decimal) error {
	return w.writeScalar(Decimal{Value: d})
}

// WriteText appends length-prefixed UTF-8 text.
//
// Returns an error wrapping errs.ErrMalformedText for invalid UTF-8; nothing
// is appended in that case.
func (w *Writer) WriteText(s string) error {
	return w.writeScalar(Text(s))
}

// WriteScalar appends s using the layout of its kind.
func (w *Writer) WriteScalar(s Scalar) error {
	if s == nil {
		return fmt.Errorf("%w: nil scalar", errs.ErrInvalidParameter)
	}

	return w.writeScalar(s)
}

// WriteTagged appends the 1-byte kind of s followed by s itself, so that a
// Reader can decode heterogeneous sequences with ReadTagged.
func (w *Writer) WriteTagged(s Scalar) error {
	if s == nil {
		return fmt.Errorf("%w: nil scalar", errs.ErrInvalidParameter)
	}

	buf := w.mustBuffer()
	mark := buf.Len()
	_ = buf.WriteByte(byte(s.Kind()))
	if err := w.writeScalar(s); err != nil {
		buf.Truncate(mark)
		return err
	}

	return nil
}

func (w *Writer) writeScalar(s Scalar) error {
	buf := w.mustBuffer()
	size := s.Size()
	_, fixed := s.Kind().FixedSize()

	if !fixed && uint64(size) > math.MaxUint32 {
		return fmt.Errorf("%w: %s of %d bytes exceeds the length prefix", errs.ErrInvalidParameter, s.Kind(), size)
	}

	mark := buf.Len()
	if !fixed {
		_ = buffer.PutUint32(buf.Extend(LengthPrefixSize), 0, uint32(size)) //nolint:gosec
	}
	if _, err := s.put(buf.Extend(size), 0); err != nil {
		buf.Truncate(mark)
		return err
	}
	w.count++

	return nil
}

// Bytes returns the encoded stream.
//
// The returned slice shares the Writer's buffer and is valid until the next
// write or Release. Use buffer.Copy to retain it.
func (w *Writer) Bytes() []byte {
	return w.mustBuffer().Bytes()
}

// Len returns the number of values written.
func (w *Writer) Len() int {
	return w.count
}

// Size returns the number of encoded bytes.
func (w *Writer) Size() int {
	return w.mustBuffer().Len()
}

// Release returns the buffer to the pool.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutStreamBuffer(w.buf)
		w.buf = nil
	}
	w.count = 0
}

// Reader decodes a sequence written by Writer.
//
// A failed read leaves the cursor where it was.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a Reader over data. The data is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the position of the next read.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// ReadBool reads a 1-byte bool.
func (r *Reader) ReadBool() (bool, error) {
	v, err := BoolAt(r.data, r.offset)
	if err != nil {
		return false, err
	}
	r.offset += BoolSize

	return v, nil
}

// ReadInt16 reads a 2-byte int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := Int16At(r.data, r.offset)
	if err != nil {
		return 0, err
	}
	r.offset += Int16Size

	return v, nil
}

// ReadInt32 reads a 4-byte int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := Int32At(r.data, r.offset)
	if err != nil {
		return 0, err
	}
	r.offset += Int32Size

	return v, nil
}

// ReadInt64 reads an 8-byte int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := Int64At(r.data, r.offset)
	if err != nil {
		return 0, err
	}
	r.offset += Int64Size

	return v, nil
}

// ReadFloat64 reads an 8-byte float64.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := Float64At(r.data, r.offset)
	if err != nil {
		return 0, err
	}
	r.offset += Float64Size

	return v, nil
}

// ReadBigInt reads a length-prefixed big integer.
func (r *Reader) ReadBigInt() (*big.Int, error) {
	s, err := r.readScalar(KindBigInt, r.offset)
	if err != nil {
		return nil, err
	}

	return s.(BigInt).Value, nil //nolint:forcetypeassert
}

// ReadDecimal reads a length-prefixed decimal.
func (r *Reader) ReadDecimal() (decimal.Decimal, error) {
	s, err := r.readScalar(KindDecimal, r.offset)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return s.(Decimal).Value, nil //nolint:forcetypeassert
}

// ReadText reads length-prefixed UTF-8 text.
func (r *Reader) ReadText() (string, error) {
	s, err := r.readScalar(KindText, r.offset)
	if err != nil {
		return "", err
	}

	return string(s.(Text)), nil //nolint:forcetypeassert
}

// ReadScalar reads a value of the given kind.
func (r *Reader) ReadScalar(kind Kind) (Scalar, error) {
	return r.readScalar(kind, r.offset)
}

// ReadTagged reads a value written by Writer.WriteTagged.
func (r *Reader) ReadTagged() (Scalar, error) {
	tag, err := buffer.Uint8(r.data, r.offset)
	if err != nil {
		return nil, err
	}

	return r.readScalar(Kind(tag), r.offset+1)
}

// readScalar decodes a value of kind starting at start and, on success,
// moves the cursor past it.
func (r *Reader) readScalar(kind Kind, start int) (Scalar, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown scalar kind %d at offset %d", errs.ErrInvalidParameter, kind, start)
	}

	if size, ok := kind.FixedSize(); ok {
		if _, err := buffer.Available(r.data, start, size); err != nil {
			return nil, err
		}
		s, err := Unmarshal(kind, r.data[start:start+size])
		if err != nil {
			return nil, err
		}
		r.offset = start + size

		return s, nil
	}

	length, err := buffer.Uint32(r.data, start)
	if err != nil {
		return nil, err
	}
	payload := start + LengthPrefixSize
	if _, err := buffer.Available(r.data, payload, int(length)); err != nil {
		return nil, err
	}

	s, err := Unmarshal(kind, r.data[payload:payload+int(length)])
	if err != nil {
		return nil, err
	}
	r.offset = payload + int(length)

	return s, nil
}
