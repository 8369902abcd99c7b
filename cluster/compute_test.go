package main

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairIndex(t *testing.T) {
	n := 5
	idx := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, idx, pairIndex(n, i, j), "pair (%d, %d)", i, j)
			idx++
		}
	}
}

func TestDistanceMatrix(t *testing.T) {
	// Sizes equal to lengths give K(xy) = K(x) + K(y), so every distance is 1.
	length := func(ctx context.Context, blobs [][]byte) ([]int64, error) {
		sizes := make([]int64, len(blobs))
		for i, b := range blobs {
			sizes[i] = int64(len(b))
		}
		return sizes, nil
	}
	data := [][]byte{make([]byte, 10), make([]byte, 20), make([]byte, 40)}
	mat, err := distanceMatrix(context.Background(), length, data)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, mat, 1e-12)

	_, err = distanceMatrix(context.Background(), length, data[:1])
	assert.Error(t, err)

	// Empty files have zero size.
	data = [][]byte{{}, {}, make([]byte, 10)}
	mat, err = distanceMatrix(context.Background(), length, data)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, mat)
}

func TestDistanceSimilarity(t *testing.T) {
	gettys, err := os.ReadFile(filepath.Join("..", "gettysburg.txt"))
	require.NoError(t, err)

	noise := make([]byte, len(gettys))
	rand.New(rand.NewSource(1)).Read(noise)
	data := [][]byte{gettys, bytes.Clone(gettys), noise}

	mat, err := distanceMatrix(context.Background(), complexity("zstd", 0), data)
	require.NoError(t, err)
	// The copy is closer than the noise.
	assert.Less(t, mat[pairIndex(3, 0, 1)], mat[pairIndex(3, 0, 2)])

	mat, err = distanceMatrix(context.Background(), complexity("arith", 24), data)
	require.NoError(t, err)
	require.Len(t, mat, 3)
	for _, d := range mat {
		assert.Greater(t, d, 0.0)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := listFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, files)

	contents, err := readFiles(files)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, contents)
}
