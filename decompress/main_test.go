package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fumin/arith"
)

func TestDecompress(t *testing.T) {
	name := filepath.Join(t.TempDir(), "abc"+arith.Ext)
	buf := bytes.NewBuffer(nil)
	n, err := arith.Compress(buf, bytes.NewReader([]byte("abc")), uint32(*adapt))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o644))

	*size = n
	assert.NoError(t, decompress(name))
	assert.Error(t, decompress(filepath.Join(t.TempDir(), "missing")))
}
