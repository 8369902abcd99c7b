// Package witten implements the arithmetic coding algorithm described in
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
//
// The coder works on byte symbols with an adaptive cumulative frequency model,
// in the unsigned integer formulation popularized by Mark Nelson.
// The Encoder and Decoder are transforms, so they compose with bit packing
// and other stages in package transform.
//
// Round trips are guaranteed only when the decoder starts from a table equal
// to the encoder's and runs an equivalent policy. The bit stream does not
// record its own length; callers must know how many symbols to decode.
package witten

import (
	"github.com/fumin/arith/ac/freq"
)

func policyOrStatic(p freq.Policy) freq.Policy {
	if p == nil {
		return freq.Static
	}
	return p
}
