package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList(" 3, 1 ,2")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = ParseIDList("")
	assert.ErrorIs(t, err, ErrEmptyIDList)

	_, err = ParseIDList("1,x")
	assert.Error(t, err)
}

func TestParseOptionalID(t *testing.T) {
	id, err := ParseOptionalID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = ParseOptionalID(" 7 ")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)

	_, err = ParseOptionalID("0")
	assert.Error(t, err)

	_, err = ParseOptionalID("x")
	assert.Error(t, err)
}
