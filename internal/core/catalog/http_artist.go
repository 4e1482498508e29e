// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	requestutil "github.com/skritch/tech-screen-api/internal/platform/request"
	"github.com/skritch/tech-screen-api/internal/platform/respond"
)

// # Artist Endpoints

/*
GET /artists.

Response:
  - 200: []Artist: Every artist, without albums
*/
func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

/*
POST /artists.

Request:
  - name: string

Response:
  - 200: Artist: The created artist with its id
  - 400: id or albums supplied, blank name
*/
func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input CreateArtistInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.CreateArtist(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}
