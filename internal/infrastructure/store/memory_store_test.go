package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelgk/crately/internal/domain/entity"
	"github.com/abelgk/crately/internal/infrastructure/store"
)

func page(n int, titles ...string) *entity.Page {
	items := make([]entity.Album, len(titles))
	for i, title := range titles {
		items[i] = entity.Album{ID: title, Title: title}
	}
	return &entity.Page{Items: items, PageNumber: n, LastPage: 3, TotalCount: len(titles)}
}

func TestMemoryPageCache_GetAfterSet(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryPageCache()
	filter := entity.Filter{Page: 1, Search: "miles"}

	stored := page(1, "Kind of Blue")
	require.NoError(t, cache.Set(ctx, filter, stored))

	got, found, err := cache.Get(ctx, filter)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored.Items, got.Items)
	assert.Equal(t, stored.PageNumber, got.PageNumber)
	assert.Equal(t, stored.TotalCount, got.TotalCount)
}

func TestMemoryPageCache_MissOnDifferentFilter(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryPageCache()
	require.NoError(t, cache.Set(ctx, entity.Filter{Page: 1, Search: "a"}, page(1, "x")))

	_, found, err := cache.Get(ctx, entity.Filter{Page: 2, Search: "a"})
	require.NoError(t, err)
	assert.False(t, found, "different page must not hit")

	_, found, err = cache.Get(ctx, entity.Filter{Page: 1, Search: "b"})
	require.NoError(t, err)
	assert.False(t, found, "different search text must not hit")

	_, found, err = cache.Get(ctx, entity.Filter{Page: 1, Search: "A"})
	require.NoError(t, err)
	assert.False(t, found, "search is case-sensitive")
}

func TestMemoryPageCache_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryPageCache()
	filter := entity.Filter{Page: 1, Search: ""}

	require.NoError(t, cache.Set(ctx, filter, page(1, "old")))
	require.NoError(t, cache.Set(ctx, filter, page(1, "new")))

	got, found, err := cache.Get(ctx, filter)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "new", got.Items[0].Title)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryPageCache_ClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryPageCache()
	filters := []entity.Filter{
		{Page: 1, Search: ""},
		{Page: 2, Search: ""},
		{Page: 1, Search: "nas"},
	}
	for _, f := range filters {
		require.NoError(t, cache.Set(ctx, f, page(f.Page, "x")))
	}
	require.Equal(t, 3, cache.Len())

	require.NoError(t, cache.Clear(ctx))

	assert.Equal(t, 0, cache.Len())
	for _, f := range filters {
		_, found, err := cache.Get(ctx, f)
		require.NoError(t, err)
		assert.False(t, found)
	}
}

func TestMemoryPageCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryPageCache()
	filter := entity.Filter{Page: 1, Search: ""}
	require.NoError(t, cache.Set(ctx, filter, page(1, "Aja")))

	got, _, err := cache.Get(ctx, filter)
	require.NoError(t, err)
	got.Items[0].Title = "mutated"

	again, _, err := cache.Get(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, "Aja", again.Items[0].Title)
}
