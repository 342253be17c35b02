package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()
	id, ok, err := s.UserID(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestMemoryStoreSetAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SetUserID(ctx, 42))
	id, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	require.NoError(t, s.ClearUserID(ctx))
	_, ok, err = s.UserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetUserID(ctx, int64(i+1))
		}()
	}
	wg.Wait()

	id, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Positive(t, id)
}
