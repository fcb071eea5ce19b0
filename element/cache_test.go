package element

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMemoization(t *testing.T) {
	table := NewTable()
	b1, err := table.Basis(3, 2, Lobatto)
	require.NoError(t, err)
	b2, err := table.Basis(3, 2, Lobatto)
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	b3, err := table.Basis(3, 2, Equispaced)
	require.NoError(t, err)
	assert.NotSame(t, b1, b3)
}

func TestTableConcurrentAccess(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	results := make([]*Basis, 32)
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			b, err := table.Basis(2, 3, Lobatto)
			assert.NoError(t, err)
			results[g] = b
		}(g)
	}
	wg.Wait()
	for g := 1; g < 32; g++ {
		assert.Same(t, results[0], results[g])
	}
}

func TestTablePropagatesNodeError(t *testing.T) {
	table := NewTable()
	_, err := table.Basis(-1, 2, Equispaced)
	require.Error(t, err)
}
