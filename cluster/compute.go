// Command cluster prints the normalized compression distance between every pair of files in a directory.
//
// The distance between x and y is (K(xy) - min(K(x), K(y))) / max(K(x), K(y)),
// where K is the compressed size. Feeding the matrix to a hierarchical
// clustering tool groups files by shared structure.
package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/fumin/arith"
)

var (
	intelligenceType = flag.String("i", "arith", "complexity estimator, arith or zstd")
	dataDir          = flag.String("d", "data", "data directory")
	adapt            = flag.Uint("adapt", 24, "frequency increment per coded byte for the arith estimator")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(*intelligenceType, *dataDir); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(intelligence, dir string) error {
	data, err := listFiles(dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	contents, err := readFiles(data)
	if err != nil {
		return errors.Wrap(err, "")
	}
	distMat, err := distanceMatrix(context.Background(), complexity(intelligence, uint32(*adapt)), contents)
	if err != nil {
		return errors.Wrap(err, "")
	}
	for i, dx := range data {
		for j, dy := range data[i+1:] {
			log.Printf("\"%s\"-\"%s\": %f", dx, dy, distMat[pairIndex(len(data), i, i+1+j)])
		}
	}

	if err := display(data, distMat); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func display(data []string, distMat []float64) error {
	// Print data as a comma separated array.
	buf := bytes.NewBuffer(nil)
	for i, fpath := range data {
		name := filepath.Base(fpath)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if _, err := buf.WriteString(strconv.Quote(base)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(data)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	// Print distance matrix as a comma separated array.
	buf.Reset()
	for i, f := range distMat {
		if _, err := buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(distMat)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	return nil
}

// A complexityFunc returns the compressed size of each blob.
type complexityFunc func(ctx context.Context, blobs [][]byte) ([]int64, error)

func complexity(intelligence string, adapt uint32) complexityFunc {
	switch intelligence {
	case "arith":
		return func(ctx context.Context, blobs [][]byte) ([]int64, error) {
			return arith.CompressedSizes(ctx, blobs, adapt)
		}
	default:
		return complexityZstd
	}
}

func complexityZstd(ctx context.Context, blobs [][]byte) ([]int64, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	defer enc.Close()
	sizes := make([]int64, len(blobs))
	for i, b := range blobs {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "")
		}
		sizes[i] = int64(len(enc.EncodeAll(b, nil)))
	}
	return sizes, nil
}

// pairIndex returns the position of the pair (i, j), i < j, in a condensed distance matrix of n items.
func pairIndex(n, i, j int) int {
	return n*i - i*(i+1)/2 + j - i - 1
}

// distanceMatrix returns the condensed matrix of normalized compression distances.
// Every single blob and every concatenated pair is compressed in one batch.
func distanceMatrix(ctx context.Context, k complexityFunc, data [][]byte) ([]float64, error) {
	n := len(data)
	if n < 2 {
		return nil, errors.Errorf("need at least two files, got %d", n)
	}

	blobs := make([][]byte, 0, n+n*(n-1)/2)
	blobs = append(blobs, data...)
	for i, dx := range data[:n-1] {
		for _, dy := range data[i+1:] {
			xy := make([]byte, 0, len(dx)+len(dy))
			xy = append(xy, dx...)
			xy = append(xy, dy...)
			blobs = append(blobs, xy)
		}
	}
	sizes, err := k(ctx, blobs)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	mat := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			kx, ky := float64(sizes[i]), float64(sizes[j])
			kxy := float64(sizes[n+len(mat)])

			minxy := kx
			if ky < kx {
				minxy = ky
			}
			maxxy := kx
			if ky > kx {
				maxxy = ky
			}
			if maxxy == 0 {
				// Both blobs compress to nothing, and are therefore identical.
				mat = append(mat, 0)
				continue
			}
			mat = append(mat, (kxy-minxy)/maxxy)
		}
	}
	return mat, nil
}

func readFiles(names []string) ([][]byte, error) {
	contents := make([][]byte, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		contents = append(contents, b)
	}
	return contents, nil
}

func listFiles(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		fpath := filepath.Join(dir, f.Name())
		data = append(data, fpath)
	}
	return data, nil
}
