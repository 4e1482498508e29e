// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skritch/tech-screen-api/internal/core/catalog"
	"github.com/skritch/tech-screen-api/internal/platform/apperr"
)

/*
TestMemoryRepository_ArtistIDsAndOrder verifies ids start at 1 and listing keeps creation order.
*/
func TestMemoryRepository_ArtistIDsAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()

	first := &catalog.Artist{Name: "artist_1"}
	second := &catalog.Artist{Name: "artist_1"}
	require.NoError(t, repo.CreateArtist(ctx, first))
	require.NoError(t, repo.CreateArtist(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	artists, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Artist{{ID: 1, Name: "artist_1"}, {ID: 2, Name: "artist_1"}}, artists)
}

/*
TestMemoryRepository_EmptyListsAreNotNil checks fresh stores and unknown artists.
*/
func TestMemoryRepository_EmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()

	artists, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	assert.NotNil(t, artists)
	assert.Empty(t, artists)

	albums, err := repo.ListAlbums(ctx, 42, catalog.AlbumFilter{})
	require.NoError(t, err)
	assert.NotNil(t, albums)
	assert.Empty(t, albums)
}

/*
TestMemoryRepository_CreateAlbum_UnknownArtist rejects albums without a parent.
*/
func TestMemoryRepository_CreateAlbum_UnknownArtist(t *testing.T) {
	repo := catalog.NewMemoryRepository()

	album := &catalog.Album{ArtistID: 7, Name: "orphan", Price: decimal.NewFromInt(1)}
	err := repo.CreateAlbum(context.Background(), album)

	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidInput))
	assert.Equal(t, catalog.MsgUnknownArtist, err.Error())
	assert.Zero(t, album.ID)
}

/*
TestMemoryRepository_ListAlbums_FiltersByArtistAndBounds checks scoping and filter evaluation.
*/
func TestMemoryRepository_ListAlbums_FiltersByArtistAndBounds(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()

	require.NoError(t, repo.CreateArtist(ctx, &catalog.Artist{Name: "artist_1"}))
	require.NoError(t, repo.CreateArtist(ctx, &catalog.Artist{Name: "artist_2"}))

	for _, album := range []*catalog.Album{
		{ArtistID: 1, Name: "cheap", Price: decimal.NewFromInt(50), ReleaseDate: mustDate(t, "2023-05-15")},
		{ArtistID: 2, Name: "other", Price: decimal.NewFromInt(80), ReleaseDate: mustDate(t, "2023-05-20")},
		{ArtistID: 1, Name: "dear", Price: decimal.NewFromInt(100), ReleaseDate: mustDate(t, "2023-06-01")},
	} {
		require.NoError(t, repo.CreateAlbum(ctx, album))
	}

	all, err := repo.ListAlbums(ctx, 1, catalog.AlbumFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{1, 3}, []int64{all[0].ID, all[1].ID})

	dear, err := repo.ListAlbums(ctx, 1, catalog.AlbumFilter{PriceGTE: price("75")})
	require.NoError(t, err)
	require.Len(t, dear, 1)
	assert.Equal(t, "dear", dear[0].Name)

	none, err := repo.ListAlbums(ctx, 1, catalog.AlbumFilter{PriceLTE: price("0")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

/*
TestMemoryRepository_CloneIsolation ensures neither input nor output aliases stored rows.
*/
func TestMemoryRepository_CloneIsolation(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()
	require.NoError(t, repo.CreateArtist(ctx, &catalog.Artist{Name: "artist_1"}))

	input := &catalog.Album{
		ArtistID: 1,
		Name:     "original",
		Price:    decimal.NewFromInt(10),
		Tracks:   []catalog.Track{{Title: ref("intro"), DurationMS: ref[int64](400)}},
	}
	require.NoError(t, repo.CreateAlbum(ctx, input))

	// 1. Mutating the caller's value after create
	input.Name = "changed"
	*input.Tracks[0].Title = "changed"

	// 2. Mutating a listed value
	listed, err := repo.ListAlbums(ctx, 1, catalog.AlbumFilter{})
	require.NoError(t, err)
	listed[0].Tracks = nil

	again, err := repo.ListAlbums(ctx, 1, catalog.AlbumFilter{})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "original", again[0].Name)
	require.Len(t, again[0].Tracks, 1)
	assert.Equal(t, "intro", *again[0].Tracks[0].Title)
}

/*
TestMemoryRepository_ConcurrentCreates assigns distinct ids under contention.
*/
func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()

	const writers = 32
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.CreateArtist(ctx, &catalog.Artist{Name: "artist"}))
		}()
	}
	wg.Wait()

	artists, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, writers)

	seen := make(map[int64]bool, writers)
	for _, artist := range artists {
		assert.False(t, seen[artist.ID])
		seen[artist.ID] = true
	}
}

/*
TestMemoryRepository_Ping always reports ready.
*/
func TestMemoryRepository_Ping(t *testing.T) {
	assert.NoError(t, catalog.NewMemoryRepository().Ping(context.Background()))
}
