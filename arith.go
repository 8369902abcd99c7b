// Package arith provides an adaptive arithmetic coding compressor for byte streams.
// The coder itself lives in package ac and its subpackages; this package wires it to io.Reader and io.Writer.
//
// Below is an example of using this package to compress Lincoln's Gettysburg address:
//    go run compress/main.go gettysburg.txt
//    go run decompress/main.go -n 1476 gettysburg.txt.ac > gettys.dac
//    diff gettysburg.txt gettys.dac
//
// The compressed stream carries no header. The number of symbols, which the
// decoder needs, is reported by Compress and must be kept by the caller.
//
// Reference:
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
package arith

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/fumin/arith/ac/freq"
	"github.com/fumin/arith/ac/witten"
	"github.com/fumin/arith/bits"
	"github.com/fumin/arith/transform"
)

// ErrShortStream is returned when the compressed stream ends before the requested number of symbols have been decoded.
var ErrShortStream = errors.New("compressed stream too short")

// Policy returns the adaptation policy used for adapt.
// Zero means a static model, otherwise each coded symbol's frequency grows by adapt.
func Policy(adapt uint32) freq.Policy {
	if adapt == 0 {
		return freq.Static
	}
	return freq.Increment{Amount: adapt}
}

// byteSeq is a transform.Seq over the bytes of a reader.
// Reading stops at the first error, which is kept in err unless it is io.EOF.
type byteSeq struct {
	r   *bufio.Reader
	n   int64
	err error
}

func newByteSeq(r io.Reader) *byteSeq {
	return &byteSeq{r: bufio.NewReader(r)}
}

func (s *byteSeq) Next() (byte, bool) {
	if s.r == nil {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.r = nil
		return 0, false
	}
	s.n++
	return b, true
}

// Compressor returns the coder used by Compress and Decompress for adapt.
func Compressor(adapt uint32) witten.Compressor {
	return witten.NewCompressor(func() freq.Policy { return Policy(adapt) })
}

// encoder returns the pipeline from symbols to packed bytes.
func encoder(c witten.Compressor) transform.Transform[byte, byte] {
	packed := transform.Chain[byte, bool, uint32](c.Encoder(), bits.NewPacker(bits.Width8))
	return transform.Chain[byte, uint32, byte](packed, transform.Map(bits.Byte))
}

// decoder returns the pipeline from packed bytes to symbols.
func decoder(c witten.Compressor) transform.Transform[byte, byte] {
	unpacked := transform.Chain[byte, uint32, bool](transform.Map(bits.Word), bits.NewUnpacker(bits.Width8))
	return transform.Chain[byte, bool, byte](unpacked, c.Decoder())
}

// Compress compresses the bytes read from r and writes the result to w.
// It returns the number of bytes read, which Decompress needs to restore them.
func Compress(w io.Writer, r io.Reader, adapt uint32) (int64, error) {
	src := newByteSeq(r)
	out := transform.Apply(transform.Seq[byte](src), encoder(Compressor(adapt)))

	bw := bufio.NewWriter(w)
	for b := range out.All() {
		if err := bw.WriteByte(b); err != nil {
			return -1, errors.Wrap(err, "")
		}
	}
	if src.err != nil {
		return -1, errors.Wrap(src.err, "")
	}
	if err := bw.Flush(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return src.n, nil
}

// Decompress decodes n bytes from the compressed stream r and writes them to w.
// adapt must be the value given to Compress.
func Decompress(w io.Writer, r io.Reader, n int64, adapt uint32) error {
	src := newByteSeq(r)
	out := transform.Apply(transform.Seq[byte](src), decoder(Compressor(adapt)))

	bw := bufio.NewWriter(w)
	for i := int64(0); i < n; i++ {
		b, ok := out.Next()
		if !ok {
			if src.err != nil {
				return errors.Wrap(src.err, "")
			}
			return errors.Wrapf(ErrShortStream, "decoded %d of %d bytes", i, n)
		}
		if err := bw.WriteByte(b); err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// countWriter counts the bytes written to it.
type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}

// CompressedSize returns the size in bytes of the compressed form of r.
func CompressedSize(r io.Reader, adapt uint32) (int64, error) {
	cw := &countWriter{}
	if _, err := Compress(cw, r, adapt); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return cw.n, nil
}
