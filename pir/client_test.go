package pir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRecoverVectorCloneAndEqual exercises the generic Vector helpers the
// recovered rows are returned as: Clone must produce an independent copy,
// and Equal must compare element-wise.
func TestRecoverVectorCloneAndEqual(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)
	ps, err = ps.WithN1(8)
	require.NoError(t, err)

	client := NewClient(ps)
	keys := client.AutoKeys()
	server := NewServer(ps, keys, 2)

	ord := ps.N1 * ps.N2
	block := make([][]uint64, ord)
	for i := 0; i < ord; i++ {
		block[i] = make([]uint64, ord)
		for j := 0; j < ord; j++ {
			block[i][j] = uint64(i+2*j) % ps.P
		}
	}
	server.Setup([][][]uint64{block})

	answers, _ := server.Answer(client.Query(2))
	row := client.Recover(answers)[0]

	clone := row.Clone()
	require.True(t, row.Equal(clone))

	clone[0]++
	require.False(t, row.Equal(clone))
}
