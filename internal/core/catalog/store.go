// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalog Data Access

// Repository defines the data access contract for artists and albums.
//
// Implementations assign ids in creation order and return rows in id order.
// Returned rows are owned by the caller; mutating them never changes the store.
type Repository interface {

	/*
		CreateArtist persists a new artist and fills in its store-assigned ID.

		Parameters:
		  - context: context.Context
		  - artist: *Artist (Name set, ID ignored)

		Returns:
		  - error: StorageUnavailable or Internal on persistence failure
	*/
	CreateArtist(context context.Context, artist *Artist) error

	// ListArtists returns every artist in id order.
	ListArtists(context context.Context) ([]*Artist, error)

	/*
		CreateAlbum persists a new album, including its tracks blob when present,
		and fills in its store-assigned ID.

		Returns:
		  - error: InvalidInput if the artist does not exist, otherwise
		    StorageUnavailable or Internal on persistence failure
	*/
	CreateAlbum(context context.Context, album *Album) error

	/*
		ListAlbums returns the albums of artistID that satisfy every bound in
		filter, in id order. An unknown artist yields an empty slice.
	*/
	ListAlbums(context context.Context, artistID int64, filter AlbumFilter) ([]*Album, error)

	// Ping reports whether the store is reachable.
	Ping(context context.Context) error
}
