// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
	"github.com/skritch/tech-screen-api/internal/platform/validate"
	"github.com/skritch/tech-screen-api/pkg/textnorm"
)

// CreateArtistInput is the body accepted by artist creation. ID and Albums
// exist only so that callers supplying them can be rejected.
type CreateArtistInput struct {
	ID     *int64            `json:"id"`
	Name   string            `json:"name"`
	Albums []json.RawMessage `json:"albums"`
}

// ListArtists returns every artist in creation order, never nil.
func (service *Service) ListArtists(context context.Context) ([]*Artist, error) {
	artists, err := service.repo.ListArtists(context)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []*Artist{}
	}
	return artists, nil
}

/*
CreateArtist validates input and persists a new artist.

Description: The caller may not choose the id and may not create albums in the
same request. Names are not required to be unique.

Returns:
  - *Artist: The stored artist including its assigned id
  - error: InvalidInput, VALIDATION_ERROR or a storage error
*/
func (service *Service) CreateArtist(context context.Context, input CreateArtistInput) (*Artist, error) {
	if input.ID != nil {
		return nil, apperr.InvalidInput(MsgCannotSupplyID)
	}
	if len(input.Albums) > 0 {
		return nil, apperr.InvalidInput(MsgCannotCreateAlbums)
	}

	artist := &Artist{Name: textnorm.Name(input.Name)}

	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name).MaxLen(FieldName, artist.Name, maxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateArtist(context, artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created", slog.Int64("artist_id", artist.ID), slog.String("name", artist.Name))
	return artist, nil
}
