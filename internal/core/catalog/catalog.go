// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the artists and albums exposed by the catalog API.

It owns the two entity collections, the album list filter, and the read-time
projection that hides track listings unless a caller asks for them.

Core Responsibility:

  - Store: Create and list artists and albums ([Repository]).
  - Service: Validate writes and list queries, project responses ([Service]).
  - HTTP: Translate requests into service calls ([Handler]).

Rows are immutable once created. Nothing in this package updates or deletes them.
*/
package catalog

import "github.com/shopspring/decimal"

func init() {
	// Prices are written as JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// # Domain Entities

// Artist is a top-level catalog entity owning zero or more albums.
//
// The JSON form never embeds the artist's albums.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Track is a value embedded in an album's track listing. It has no identity of
// its own and is replaced wholesale with its album.
type Track struct {
	Title      *string `json:"title"`
	DurationMS *int64  `json:"duration_ms"`
}

// Album belongs to exactly one artist and carries a price, a release date and
// an optional track listing.
//
// # Tracks
//
// A nil Tracks slice means the album has no listing and encodes as null. A
// non-nil empty slice is an empty listing and encodes as []. Both states are
// persisted as given.
type Album struct {
	ID          int64           `json:"id"`
	ArtistID    int64           `json:"artist_id"`
	Name        string          `json:"name"`
	ReleaseDate Date            `json:"release_date"`
	Price       decimal.Decimal `json:"price"`
	Tracks      []Track         `json:"tracks"`
}

// Project returns a copy of the album shaped for a response. When includeTracks
// is false the copy's Tracks is nil; otherwise the copy carries its own clone
// of the stored listing. The receiver is never modified.
func (album Album) Project(includeTracks bool) Album {
	if !includeTracks {
		album.Tracks = nil
		return album
	}
	album.Tracks = cloneTracks(album.Tracks)
	return album
}

func cloneTracks(tracks []Track) []Track {
	if tracks == nil {
		return nil
	}

	cloned := make([]Track, len(tracks))
	for i, track := range tracks {
		if track.Title != nil {
			title := *track.Title
			track.Title = &title
		}
		if track.DurationMS != nil {
			duration := *track.DurationMS
			track.DurationMS = &duration
		}
		cloned[i] = track
	}
	return cloned
}

// # Field Names

const (
	FieldID            = "id"
	FieldName          = "name"
	FieldArtistID      = "artist_id"
	FieldReleaseDate   = "release_date"
	FieldPrice         = "price"
	FieldTracks        = "tracks"
	FieldPriceGTE      = "price_gte"
	FieldPriceLTE      = "price_lte"
	FieldDateGTE       = "date_gte"
	FieldDateLTE       = "date_lte"
	FieldIncludeTracks = "include_tracks"
)

// maxNameLength bounds artist and album names.
const maxNameLength = 500

// # Error Messages

const (
	MsgCannotSupplyID     = "Cannot supply id"
	MsgCannotCreateAlbums = "Cannot create albums with this endpoint"
	MsgCannotCreateArtist = "Cannot create artist with this endpoint"
	MsgArtistMismatch     = "artist_id does not match path"
	MsgUnknownArtist      = "Artist does not exist"
	MsgPriceRange         = "price_gte must be less than price_lte"
	MsgDateRange          = "date_gte must be less than date_lte"
)
