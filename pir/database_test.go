package pir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPreprocessDatabaseShape checks the preprocessed buffer has one
// diagonal set per block, tiled N2 giant steps by N1 baby steps.
func TestPreprocessDatabaseShape(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)
	ps, err = ps.WithN1(8)
	require.NoError(t, err)

	ord := ps.N1 * ps.N2
	blocks := make([][][]uint64, 3)
	for bi := range blocks {
		blocks[bi] = make([][]uint64, ord)
		for i := range blocks[bi] {
			blocks[bi][i] = make([]uint64, ord)
			for j := range blocks[bi][i] {
				blocks[bi][i][j] = uint64(bi+i+j) % ps.P
			}
		}
	}

	db := PreprocessDatabase(ps, blocks)

	require.Equal(t, len(blocks), len(db.diag))
	require.Equal(t, len(blocks), db.NumBlocks())
	for bi, block := range db.diag {
		require.Equal(t, ps.N2, len(block))
		for g, giant := range block {
			require.Equal(t, ps.N1, len(giant))
			for b, poly := range giant {
				require.Len(t, poly, len(ps.FullRing))
				require.Equal(t, poly, db.Slot(bi, g, b))
			}
		}
	}
}
