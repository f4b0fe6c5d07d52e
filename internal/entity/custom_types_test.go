package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapMerge(t *testing.T) {
	original := JSONMap{"a": "1", "b": "2"}
	merged := original.Merge(JSONMap{"b": "override", "c": "3"})

	assert.Equal(t, JSONMap{"a": "1", "b": "override", "c": "3"}, merged)
	assert.Equal(t, JSONMap{"a": "1", "b": "2"}, original, "receiver must not be mutated")
}

func TestJSONMapMergeNilReceiver(t *testing.T) {
	var original JSONMap
	merged := original.Merge(JSONMap{"error": "boom"})

	assert.Equal(t, JSONMap{"error": "boom"}, merged)
}

func TestJSONMapValueAndScan(t *testing.T) {
	m := JSONMap{"clave": "valor", "n": float64(3)}

	value, err := m.Value()
	require.NoError(t, err)

	var scanned JSONMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, m, scanned)
}

func TestJSONMapScanNil(t *testing.T) {
	scanned := JSONMap{"stale": true}
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestJSONMapScanUnsupportedType(t *testing.T) {
	var scanned JSONMap
	assert.Error(t, scanned.Scan(42))
}
