// SPDX-License-Identifier: MIT
package mtx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SelfLoopsRemoved(t *testing.T) {
	input := "3 3 4\n1 1 1\n1 2 2\n2 3 3\n3 3 4\n"

	rows, cols, vals, nrows, ncols, err := Load(strings.NewReader(input), WithoutSelfLoops())
	require.NoError(t, err)
	assert.Equal(t, 3, nrows)
	assert.Equal(t, 3, ncols)
	assert.Equal(t, []uint32{0, 1}, rows)
	assert.Equal(t, []uint32{1, 2}, cols)
	assert.Equal(t, []any{float64(2), float64(3)}, vals)
}

func TestLoad_Undirected(t *testing.T) {
	input := "2 2 1\n1 2 5\n"

	rows, cols, vals, _, _, err := Load(strings.NewReader(input), WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1}, rows)
	assert.Equal(t, []uint32{1, 0}, cols)
	assert.Equal(t, []any{float64(5), float64(5)}, vals)
}

func TestLoad_IgnoreValues(t *testing.T) {
	input := "2 2 1\n1 2 5\n"

	rows, cols, vals, _, _, err := Load(strings.NewReader(input), WithIgnoreValues())
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, rows)
	assert.Equal(t, []uint32{1}, cols)
	assert.Nil(t, vals)
}

func TestLoad_IndexOutOfRangeFails(t *testing.T) {
	input := "2 2 1\n1 3 5\n"

	_, _, _, _, _, err := Load(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLoad_NNZMismatchFails(t *testing.T) {
	input := "2 2 2\n1 2 5\n"

	_, _, _, _, _, err := Load(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrNNZMismatch)
}

func TestLoad_MalformedHeaderFails(t *testing.T) {
	_, _, _, _, _, err := Load(strings.NewReader("not a header\n"))
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestLoad_SkipsCommentLines(t *testing.T) {
	input := "%%MatrixMarket matrix coordinate real general\n% a comment\n2 2 1\n1 2 7\n"

	rows, cols, vals, nrows, ncols, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, nrows)
	assert.Equal(t, 2, ncols)
	assert.Equal(t, []uint32{0}, rows)
	assert.Equal(t, []uint32{1}, cols)
	assert.Equal(t, []any{float64(7)}, vals)
}

func TestLoad_ValuelessLines(t *testing.T) {
	input := "2 2 1\n1 2\n"

	rows, cols, vals, _, _, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, rows)
	assert.Equal(t, []uint32{1}, cols)
	assert.Equal(t, []any{nil}, vals)
}
