// Package bits converts between words and bits, most significant bit first.
package bits

import (
	"fmt"

	"github.com/fumin/arith/transform"
)

// Width is the number of bits in a packed word.
type Width uint

// The supported widths.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

func (w Width) check() {
	switch w {
	case Width8, Width16, Width32:
	default:
		panic(fmt.Sprintf("bits: unsupported width %d", w))
	}
}

// A Packer packs bits into words of its width.
// A trailing partial word is padded with zeros.
type Packer struct {
	w Width
}

var _ transform.Transform[bool, uint32] = Packer{}

// NewPacker returns a Packer for w.
func NewPacker(w Width) Packer {
	w.check()
	return Packer{w: w}
}

// Next implements transform.Transform.
func (p Packer) Next(src transform.Seq[bool]) (uint32, bool) {
	bit, ok := src.Next()
	if !ok {
		return 0, false
	}
	var word uint32
	if bit {
		word = 1
	}
	for i := Width(1); i < p.w; i++ {
		word <<= 1
		if bit, ok = src.Next(); ok && bit {
			word |= 1
		}
	}
	return word, true
}

// SizeHint implements transform.Hinter.
func (p Packer) SizeHint(in transform.Bounds) transform.Bounds {
	w := int(p.w)
	return transform.Bounds{
		Lower:   (in.Lower + w - 1) / w,
		Upper:   (in.Upper + w - 1) / w,
		Bounded: in.Bounded,
	}
}

// An Unpacker splits words of its width into bits.
type Unpacker struct {
	w    Width
	word uint32
	left Width
}

var _ transform.Transform[uint32, bool] = (*Unpacker)(nil)

// NewUnpacker returns an Unpacker for w.
// Bits of a word above w are ignored.
func NewUnpacker(w Width) *Unpacker {
	w.check()
	return &Unpacker{w: w}
}

// Next implements transform.Transform.
func (u *Unpacker) Next(src transform.Seq[uint32]) (bool, bool) {
	if u.left == 0 {
		word, ok := src.Next()
		if !ok {
			return false, false
		}
		u.word, u.left = word, u.w
	}
	u.left--
	return u.word>>u.left&1 == 1, true
}

// SizeHint implements transform.Hinter.
func (u *Unpacker) SizeHint(in transform.Bounds) transform.Bounds {
	w, left := int(u.w), int(u.left)
	return transform.Bounds{
		Lower:   in.Lower*w + left,
		Upper:   in.Upper*w + left,
		Bounded: in.Bounded,
	}
}

// Word converts a byte to a word, for feeding an 8 bit Unpacker from a byte stream.
func Word(b byte) uint32 {
	return uint32(b)
}

// Byte truncates a word to a byte, for draining an 8 bit Packer into a byte stream.
func Byte(w uint32) byte {
	return byte(w)
}
