// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
	"github.com/skritch/tech-screen-api/internal/platform/validate"
	"github.com/skritch/tech-screen-api/pkg/textnorm"
)

// CreateAlbumInput is the body accepted by album creation. ID and Artist exist
// only so that callers supplying them can be rejected.
type CreateAlbumInput struct {
	ID          *int64           `json:"id"`
	ArtistID    *int64           `json:"artist_id"`
	Artist      json.RawMessage  `json:"artist"`
	Name        string           `json:"name"`
	ReleaseDate *Date            `json:"release_date"`
	Price       *decimal.Decimal `json:"price"`
	Tracks      []Track          `json:"tracks"`
}

/*
ListAlbums returns the albums of artistID matching query.Filter.

Description: Bounds are validated before the store is touched. Every returned
album is a projection built from a copy of the stored row, so hiding tracks
never reaches the store. An unknown artist yields an empty, non-nil slice.

Returns:
  - []Album: Projected albums in creation order
  - error: InvalidRange for inverted bounds, or a storage error
*/
func (service *Service) ListAlbums(context context.Context, artistID int64, query AlbumQuery) ([]Album, error) {
	if err := query.Filter.Validate(); err != nil {
		return nil, err
	}

	stored, err := service.repo.ListAlbums(context, artistID, query.Filter)
	if err != nil {
		return nil, err
	}

	albums := make([]Album, 0, len(stored))
	for _, album := range stored {
		albums = append(albums, album.Project(query.IncludeTracks))
	}
	return albums, nil
}

/*
CreateAlbum validates input and persists a new album for artistID.

Description: The caller may not choose the id or embed an artist object. A body
artist_id, when given, must equal artistID. The artist must already exist.

Returns:
  - *Album: The stored album, tracks exactly as supplied
  - error: InvalidInput, VALIDATION_ERROR or a storage error
*/
func (service *Service) CreateAlbum(context context.Context, artistID int64, input CreateAlbumInput) (*Album, error) {
	if input.ID != nil {
		return nil, apperr.InvalidInput(MsgCannotSupplyID)
	}
	if present(input.Artist) {
		return nil, apperr.InvalidInput(MsgCannotCreateArtist)
	}
	if input.ArtistID != nil && *input.ArtistID != artistID {
		return nil, apperr.InvalidInput(MsgArtistMismatch)
	}

	name := textnorm.Name(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLength)
	validator.Custom(FieldReleaseDate, input.ReleaseDate == nil || input.ReleaseDate.IsZero(), "This field is required")
	validator.Custom(FieldPrice, input.Price == nil, "This field is required")
	validator.Custom(FieldPrice, input.Price != nil && input.Price.IsNegative(), "Must not be negative")
	for i, track := range input.Tracks {
		validator.Custom(fmt.Sprintf("%s[%d].duration_ms", FieldTracks, i),
			track.DurationMS != nil && *track.DurationMS < 0, "Must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	album := &Album{
		ArtistID:    artistID,
		Name:        name,
		ReleaseDate: *input.ReleaseDate,
		Price:       *input.Price,
		Tracks:      cloneTracks(input.Tracks),
	}

	if err := service.repo.CreateAlbum(context, album); err != nil {
		return nil, err
	}

	service.logger.Info("album_created",
		slog.Int64("album_id", album.ID),
		slog.Int64("artist_id", album.ArtistID),
		slog.Bool("has_tracks", album.Tracks != nil),
	)
	return album, nil
}
