package arith

import (
	"bytes"
	"context"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Ext is the file extension of compressed files.
const Ext = ".ac"

// CompressFile compresses the file src into dst.
// It returns the number of bytes in src.
func CompressFile(dst, src string, adapt uint32) (int64, error) {
	r, err := os.Open(src)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	n, err := Compress(w, r, adapt)
	if err != nil {
		w.Close()
		return -1, errors.Wrap(err, src)
	}
	if err := w.Close(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return n, nil
}

// DecompressFile restores n bytes from the compressed file src into dst.
func DecompressFile(dst, src string, n int64, adapt uint32) error {
	r, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if err := Decompress(w, r, n, adapt); err != nil {
		w.Close()
		return errors.Wrap(err, src)
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// CompressFiles compresses every file in names to the same name with Ext appended.
// Files are compressed concurrently, each with its own model.
// It returns the number of bytes of each file.
func CompressFiles(ctx context.Context, names []string, adapt uint32) ([]int64, error) {
	sizes := make([]int64, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			// Check if another file already failed.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			n, err := CompressFile(name+Ext, name, adapt)
			if err != nil {
				return errors.Wrap(err, "")
			}
			sizes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return sizes, nil
}

// CompressedSizes returns the compressed size of each of the given byte slices.
// The slices are compressed concurrently, each with its own model.
func CompressedSizes(ctx context.Context, data [][]byte, adapt uint32) ([]int64, error) {
	sizes := make([]int64, len(data))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, d := range data {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			n, err := CompressedSize(bytes.NewReader(d), adapt)
			if err != nil {
				return errors.Wrap(err, "")
			}
			sizes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return sizes, nil
}
