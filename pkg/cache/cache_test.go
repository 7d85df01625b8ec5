package cache

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3aro/go-cflow/pkg/analysis"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.msgpack")

	store, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	report := analysis.AnalyzeSource("x = 1;\nif (x > 0) {\ny = 2; }\nz = 3;")
	report.File = "sample.c"

	require.NoError(t, store.Set("k1", report))
	require.NoError(t, store.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, reopened.Len())

	var decoded analysis.Report
	require.NoError(t, reopened.Get("k1", &decoded))
	assert.Equal(t, report.File, decoded.File)
	assert.Equal(t, report.Metrics, decoded.Metrics)
	assert.Equal(t, report.Definitions, decoded.Definitions)
	assert.Len(t, decoded.Iterations, len(report.Iterations))
}

func TestStoreMiss(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cache.msgpack"))
	require.NoError(t, err)

	var v int
	err = store.Get("absent", &v)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestKey(t *testing.T) {
	a := Key("sample.c", []byte("x = 1;"))
	b := Key("sample.c", []byte("x = 2;"))
	c := Key("other.c", []byte("x = 1;"))

	assert.NotEqual(t, a, b, "content change must change the key")
	assert.NotEqual(t, a, c, "path change must change the key")
	assert.Equal(t, a, Key("sample.c", []byte("x = 1;")))
}
