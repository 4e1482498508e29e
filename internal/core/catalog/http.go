// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog provides the HTTP interface for the artist and album catalog.

# Routing Strategy

  - GET/POST /artists: list and create artists.
  - GET/POST /artist/{artist_id}/albums: list (filtered) and create albums.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package catalog

import (
	"github.com/go-chi/chi/v5"
)

// # Handler Implementation

// Handler implements the HTTP layer for the catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the catalog endpoints to router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/artists", handler.listArtists)
	router.Post("/artists", handler.createArtist)

	router.Get("/artist/{artist_id}/albums", handler.listAlbums)
	router.Post("/artist/{artist_id}/albums", handler.createAlbum)
}
