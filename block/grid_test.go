// SPDX-License-Identifier: MIT
package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid_PartitionsIntoCeilDivBlocks(t *testing.T) {
	g := NewGrid(10, 5, 4)
	assert.Equal(t, 3, g.BR)
	assert.Equal(t, 2, g.BC)
	assert.Equal(t, 6, g.NumBlocks())
}

func TestGrid_BoundsClampsLastBlock(t *testing.T) {
	g := NewGrid(10, 5, 4)
	r0, r1, c0, c1 := g.Bounds(2, 1)
	assert.Equal(t, 8, r0)
	assert.Equal(t, 10, r1)
	assert.Equal(t, 4, c0)
	assert.Equal(t, 5, c1)
}

func TestNewVectorGrid_IsOneColumnWide(t *testing.T) {
	g := NewVectorGrid(10, 4)
	assert.Equal(t, 1, g.BC)
	assert.Equal(t, 3, g.BR)
}

func TestGrid_NonPositiveBlockSizeFallsBackToDefault(t *testing.T) {
	g := NewGrid(10, 10, 0)
	assert.Equal(t, DefaultBlockSize, g.BlockSize)
}
