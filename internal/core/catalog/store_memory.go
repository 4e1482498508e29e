// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"sync"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
)

// MemoryRepository implements [Repository] in process memory.
//
// It backs STORAGE_DRIVER=memory and the package tests. Rows are cloned on
// the way in and on the way out, so callers never share state with the store.
type MemoryRepository struct {
	mu           sync.RWMutex
	artists      []*Artist
	artistIndex  map[int64]struct{}
	albums       []*Album
	nextArtistID int64
	nextAlbumID  int64
}

// NewMemoryRepository returns an empty in-memory store whose ids start at 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		artistIndex:  make(map[int64]struct{}),
		nextArtistID: 1,
		nextAlbumID:  1,
	}
}

// CreateArtist stores a copy of artist and assigns its ID.
func (repository *MemoryRepository) CreateArtist(_ context.Context, artist *Artist) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	artist.ID = repository.nextArtistID
	repository.nextArtistID++

	stored := *artist
	repository.artists = append(repository.artists, &stored)
	repository.artistIndex[stored.ID] = struct{}{}
	return nil
}

// ListArtists returns copies of every artist in id order.
func (repository *MemoryRepository) ListArtists(_ context.Context) ([]*Artist, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make([]*Artist, 0, len(repository.artists))
	for _, artist := range repository.artists {
		cloned := *artist
		result = append(result, &cloned)
	}
	return result, nil
}

// CreateAlbum stores a copy of album and assigns its ID. The artist must exist.
func (repository *MemoryRepository) CreateAlbum(_ context.Context, album *Album) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.artistIndex[album.ArtistID]; !ok {
		return apperr.InvalidInput(MsgUnknownArtist)
	}

	album.ID = repository.nextAlbumID
	repository.nextAlbumID++

	stored := cloneAlbum(album)
	repository.albums = append(repository.albums, stored)
	return nil
}

// ListAlbums returns copies of the artist's albums that match filter.
func (repository *MemoryRepository) ListAlbums(_ context.Context, artistID int64, filter AlbumFilter) ([]*Album, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make([]*Album, 0)
	for _, album := range repository.albums {
		if album.ArtistID == artistID && filter.Matches(album) {
			result = append(result, cloneAlbum(album))
		}
	}
	return result, nil
}

// Ping always succeeds.
func (repository *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

func cloneAlbum(album *Album) *Album {
	cloned := *album
	cloned.Tracks = cloneTracks(album.Tracks)
	return &cloned
}
