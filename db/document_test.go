package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentValue(t *testing.T) {
	var nilDoc Document
	v, err := nilDoc.Value()
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), v)

	doc := Document{"quantity": 20}
	v, err = doc.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"quantity": 20}`, string(v.([]byte)))
}

func TestDocumentScan(t *testing.T) {
	var doc Document
	require.NoError(t, doc.Scan([]byte(`{"quantity": 20}`)))
	require.Equal(t, float64(20), doc["quantity"])

	var fromString Document
	require.NoError(t, fromString.Scan(`{"a": "b"}`))
	require.Equal(t, "b", fromString["a"])

	var fromNil Document
	require.NoError(t, fromNil.Scan(nil))
	require.NotNil(t, fromNil)
	require.Empty(t, fromNil)

	var bad Document
	require.Error(t, bad.Scan(42))
	require.Error(t, bad.Scan([]byte("not json")))
}
