// Package transformtest provides helpers for testing pairs of transforms.
package transformtest

import (
	"github.com/stretchr/testify/require"

	"github.com/fumin/arith/transform"
)

// RoundTrip encodes items with enc, decodes the result with dec, and requires
// the first len(items) decoded values to equal items.
// Decoders may produce trailing values past the input, such as padding, and these are ignored.
// It returns the encoded data.
//
// t may be a *testing.T or a *rapid.T.
func RoundTrip[Item, Data any](t require.TestingT, enc transform.Transform[Item, Data], dec transform.Transform[Data, Item], items []Item) []Data {
	data := transform.Collect(transform.Apply(transform.FromSlice(items), enc))
	decoded := transform.Collect(transform.Take[Item](transform.Apply(transform.FromSlice(data), dec), len(items)))
	require.Len(t, decoded, len(items), "encoded length %d", len(data))
	if len(items) > 0 {
		require.Equal(t, items, decoded)
	}
	return data
}
