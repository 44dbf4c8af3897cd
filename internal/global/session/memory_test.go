package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state struct {
	Mode string `json:"mode"`
	N    int    `json:"n"`
}

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	id := NewID()

	var got state
	ok, err := s.Load(ctx, id, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, id, state{Mode: "detail", N: 3}))
	ok, err = s.Load(ctx, id, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state{Mode: "detail", N: 3}, got)

	require.NoError(t, s.Delete(ctx, id))
	ok, err = s.Load(ctx, id, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "a", state{N: 1}))
	now = now.Add(59 * time.Second)
	var got state
	ok, _ := s.Load(ctx, "a", &got)
	assert.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = s.Load(ctx, "a", &got)
	assert.False(t, ok)
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	v := &state{N: 1}
	require.NoError(t, s.Save(ctx, "a", v))
	v.N = 2

	var got state
	_, err := s.Load(ctx, "a", &got)
	require.NoError(t, err)
	assert.Equal(t, 1, got.N)
}
