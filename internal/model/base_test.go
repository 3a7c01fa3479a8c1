package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"HTML", "CSS"}

	value, err := list.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["HTML","CSS"]`, string(value.([]byte)))

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)
}

func TestStringListNilSerializesAsEmptyArray(t *testing.T) {
	var list StringList
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))

	var scanned StringList
	require.NoError(t, scanned.Scan(nil))
	assert.NotNil(t, scanned)
	assert.Empty(t, scanned)
}

func TestIntListScanString(t *testing.T) {
	var list IntList
	require.NoError(t, list.Scan("[1,3,5]"))
	assert.Equal(t, IntList{1, 3, 5}, list)

	assert.Error(t, list.Scan(42))
}
