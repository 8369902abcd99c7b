package witten

import (
	"github.com/fumin/arith/ac/freq"
)

// A Compressor builds encoders and decoders that stay in step.
// Each coder gets its own copy of Model and its own policy from Policy.
type Compressor struct {
	Model freq.Table

	// Policy returns a fresh policy for every coder, since policies may be stateful.
	// A nil Policy means freq.Static.
	Policy func() freq.Policy
}

// NewCompressor returns a Compressor over the uniform model.
func NewCompressor(policy func() freq.Policy) Compressor {
	return Compressor{Model: freq.New(), Policy: policy}
}

func (c Compressor) policy() freq.Policy {
	if c.Policy == nil {
		return freq.Static
	}
	return c.Policy()
}

// Encoder returns a new Encoder.
func (c Compressor) Encoder() *Encoder {
	return NewEncoder(c.Model, c.policy())
}

// Decoder returns a new Decoder which decodes the output of any Encoder from c.
func (c Compressor) Decoder() *Decoder {
	return NewDecoder(c.Model, c.policy())
}
