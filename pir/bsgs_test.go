package pir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBSGSRetrievesColumn is golden scenario 1: a database M[i][j] with a
// simple closed form, querying one column, and checking the server's
// answer reproduces that column at every row once the client recovers it.
func TestBSGSRetrievesColumn(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)
	ps, err = ps.WithN1(4)
	require.NoError(t, err)

	client := NewClient(ps)
	keys := client.AutoKeys()
	server := NewServer(ps, keys, 4)

	ord := ps.N1 * ps.N2
	block := make([][]uint64, ord)
	for i := 0; i < ord; i++ {
		block[i] = make([]uint64, ord)
		for j := 0; j < ord; j++ {
			block[i][j] = uint64(i*7+j) % ps.P
		}
	}
	server.Setup([][][]uint64{block})

	u := 3
	query := client.Query(u)
	answers, _ := server.Answer(query)
	require.Len(t, answers, 1)

	got := client.Recover(answers)[0]
	for row := 0; row < ord; row++ {
		require.Equal(t, block[row][u], got[row], "row %d", row)
	}
}

// TestBSGSBoundaryN1Degenerate checks the two degenerate tile shapes
// (pure giant-step, pure baby-step) against an intermediate N1 for the
// same database and query, over N=256 (ord=128).
func TestBSGSBoundaryN1Degenerate(t *testing.T) {
	ord := 128
	makeBlock := func() [][]uint64 {
		b := make([][]uint64, ord)
		for i := range b {
			b[i] = make([]uint64, ord)
			for j := range b[i] {
				b[i][j] = uint64(i*3+j+1) % 7681
			}
		}
		return b
	}
	u := 5

	run := func(n1 int) []uint64 {
		ps, err := NewParameterSet(256)
		require.NoError(t, err)
		ps, err = ps.WithN1(n1)
		require.NoError(t, err)

		client := NewClient(ps)
		keys := client.AutoKeys()
		server := NewServer(ps, keys, 2)
		server.Setup([][][]uint64{makeBlock()})

		answers, _ := server.Answer(client.Query(u))
		return client.Recover(answers)[0]
	}

	pureGiant := run(1)
	pureBaby := run(ord)
	mixed := run(4)

	require.Equal(t, pureGiant, pureBaby)
	require.Equal(t, pureGiant, mixed)
}
