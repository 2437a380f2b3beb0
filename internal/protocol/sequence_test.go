package protocol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceNext(t *testing.T) {
	var seq Sequence
	for i := uint64(0); i < 100; i++ {
		assert.Equal(t, i, seq.Next())
	}
}

func TestSequenceConcurrent(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var seq Sequence
	results := make([][]uint64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]uint64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				out = append(out, seq.Next())
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, workers*perWorker)
	for _, out := range results {
		for _, v := range out {
			_, dup := seen[v]
			require.False(t, dup, "duplicate index %d", v)
			seen[v] = struct{}{}
			require.Less(t, v, uint64(workers*perWorker))
		}
	}
	assert.Len(t, seen, workers*perWorker)
}
