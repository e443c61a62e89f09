package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mycraftmw/scaler/go/pkg/model"
)

func TestInsertGet(t *testing.T) {
	r := New()
	_, ok := r.Get("fn-a")
	require.False(t, ok)

	r.Insert(&model.Meta{Key: "fn-a", Runtime: "nodejs"})
	m, ok := r.Get("fn-a")
	require.True(t, ok)
	require.Equal(t, "nodejs", m.Runtime)
	require.Equal(t, 1, r.Len())
}

func TestInsertLastWriteWins(t *testing.T) {
	r := New()
	r.Insert(&model.Meta{Key: "fn-a", MemoryInMb: 128})
	r.Insert(&model.Meta{Key: "fn-a", MemoryInMb: 256})

	m, ok := r.Get("fn-a")
	require.True(t, ok)
	require.EqualValues(t, 256, m.MemoryInMb)
	require.Equal(t, 1, r.Len())
}

func TestKeys(t *testing.T) {
	r := New()
	r.Insert(&model.Meta{Key: "fn-a"})
	r.Insert(&model.Meta{Key: "fn-b"})
	require.ElementsMatch(t, []string{"fn-a", "fn-b"}, r.Keys())
}

func TestConcurrentInsertGet(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "fn-a"
			r.Insert(&model.Meta{Key: key, MemoryInMb: uint64(i)})
			_, _ = r.Get(key)
		}(i)
	}
	wg.Wait()
	_, ok := r.Get("fn-a")
	require.True(t, ok)
}
