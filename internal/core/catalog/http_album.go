// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	requestutil "github.com/skritch/tech-screen-api/internal/platform/request"
	"github.com/skritch/tech-screen-api/internal/platform/respond"
	"github.com/skritch/tech-screen-api/internal/platform/validate"
)

// # Album Endpoints

/*
GET /artist/{artist_id}/albums.

Request:
  - price_gte, price_lte: decimal (inclusive bounds)
  - date_gte, date_lte: YYYY-MM-DD (inclusive bounds)
  - include_tracks: bool (default false)

Response:
  - 200: []Album: Possibly empty, tracks null unless include_tracks
  - 400: Malformed parameter or inverted bounds
*/
func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.Int64Param(request, FieldArtistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query, err := parseAlbumQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.service.ListAlbums(request.Context(), artistID, query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, albums)
}

/*
POST /artist/{artist_id}/albums.

Request:
  - artist_id: int (optional, must match the path)
  - name: string
  - release_date: YYYY-MM-DD
  - price: decimal
  - tracks: [{title, duration_ms}] (optional)

Response:
  - 200: Album: The created album with its id
  - 400: id or artist supplied, missing fields, unknown artist
*/
func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.Int64Param(request, FieldArtistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateAlbumInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	album, err := handler.service.CreateAlbum(request.Context(), artistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album)
}

// # Query Parsing

// parseAlbumQuery reads the list filters, collecting every malformed parameter
// into one validation error.
func parseAlbumQuery(request *http.Request) (AlbumQuery, error) {
	validator := &validate.Validator{}

	query := AlbumQuery{
		Filter: AlbumFilter{
			PriceGTE: decimalParam(request, FieldPriceGTE, validator),
			PriceLTE: decimalParam(request, FieldPriceLTE, validator),
			DateGTE:  dateParam(request, FieldDateGTE, validator),
			DateLTE:  dateParam(request, FieldDateLTE, validator),
		},
		IncludeTracks: boolParam(request, FieldIncludeTracks, validator),
	}

	return query, validator.Err()
}

func decimalParam(request *http.Request, name string, validator *validate.Validator) *decimal.Decimal {
	raw, ok := requestutil.Query(request, name)
	if !ok {
		return nil
	}

	value, err := decimal.NewFromString(raw)
	validator.Custom(name, err != nil, "Must be a decimal number")
	if err != nil {
		return nil
	}
	return &value
}

func dateParam(request *http.Request, name string, validator *validate.Validator) *Date {
	raw, ok := requestutil.Query(request, name)
	if !ok {
		return nil
	}

	value, err := ParseDate(raw)
	validator.Custom(name, err != nil, "Must be a date in YYYY-MM-DD format")
	if err != nil {
		return nil
	}
	return &value
}

func boolParam(request *http.Request, name string, validator *validate.Validator) bool {
	raw, ok := requestutil.Query(request, name)
	if !ok {
		return false
	}

	value, err := strconv.ParseBool(raw)
	validator.Custom(name, err != nil, "Must be a boolean")
	return value
}
