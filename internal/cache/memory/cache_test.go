package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortle/wortle-server/internal/model"
)

func TestGetMiss(t *testing.T) {
	c := New()

	_, err := c.Get(context.Background(), "haus")
	assert.ErrorIs(t, err, model.ErrNotCached)
}

func TestPutAndGet(t *testing.T) {
	c := New()
	ctx := context.Background()

	example := &model.Example{German: "Das Haus ist groß.", Translation: "Rumah itu besar."}
	require.NoError(t, c.Put(ctx, "haus", example))

	got, err := c.Get(ctx, "haus")
	require.NoError(t, err)
	assert.Equal(t, example, got)
}

func TestGetReturnsCopy(t *testing.T) {
	c := New()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "haus", &model.Example{German: "Das Haus ist groß."}))

	first, err := c.Get(ctx, "haus")
	require.NoError(t, err)
	first.German = "mutated"

	second, err := c.Get(ctx, "haus")
	require.NoError(t, err)
	assert.Equal(t, "Das Haus ist groß.", second.German)
}

func TestKeysAreExact(t *testing.T) {
	c := New()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "haus", &model.Example{German: "Das Haus ist groß."}))

	// Normalization is the caller's job; the cache matches exactly
	_, err := c.Get(ctx, "Haus")
	assert.ErrorIs(t, err, model.ErrNotCached)
}
