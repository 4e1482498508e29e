// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog provides the PostgreSQL implementation of the catalog store.

Prices are NUMERIC and travel through [pgtype.Numeric] so no value ever passes
through a float. Track listings live in a nullable JSONB column on the album
row: SQL NULL for no listing, a JSON array otherwise.
*/
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
	"github.com/skritch/tech-screen-api/internal/platform/database/schema"
	"github.com/skritch/tech-screen-api/internal/platform/dberr"
)

// DBTX is the subset of [pgxpool.Pool] the repository needs.
type DBTX interface {
	Query(context context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(context context.Context, sql string, args ...any) pgx.Row
	Ping(context context.Context) error
}

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db DBTX
}

// NewPostgresRepository constructs a PostgreSQL backed catalog store.
func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Artists

func (repository *PostgresRepository) CreateArtist(context context.Context, artist *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		RETURNING %s
	`,
		schema.CatalogArtist.Table, schema.CatalogArtist.Name,
		schema.CatalogArtist.ID,
	)

	err := repository.db.QueryRow(context, query, artist.Name).Scan(&artist.ID)
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) ListArtists(context context.Context) ([]*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.CatalogArtist.ID, schema.CatalogArtist.Name,
		schema.CatalogArtist.Table,
		schema.CatalogArtist.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	artists := make([]*Artist, 0)
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "list_artists")
}

// # Albums

func (repository *PostgresRepository) CreateAlbum(context context.Context, album *Album) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.CatalogAlbum.Table,
		schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Name, schema.CatalogAlbum.ReleaseDate,
		schema.CatalogAlbum.Price, schema.CatalogAlbum.Tracks,
		schema.CatalogAlbum.ID,
	)

	tracks, err := encodeTracks(album.Tracks)
	if err != nil {
		return apperr.Internal(err)
	}

	err = repository.db.QueryRow(context, query,
		album.ArtistID, album.Name, album.ReleaseDate.Time(), toNumeric(album.Price), tracks,
	).Scan(&album.ID)

	if dberr.IsForeignKeyViolation(err) {
		return apperr.InvalidInput(MsgUnknownArtist)
	}
	return dberr.Wrap(err, "create_album")
}

func (repository *PostgresRepository) ListAlbums(context context.Context, artistID int64, filter AlbumFilter) ([]*Album, error) {
	query, args := listAlbumsQuery(artistID, filter)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	albums := make([]*Album, 0)
	for rows.Next() {
		var (
			a           = &Album{}
			releaseDate time.Time
			price       pgtype.Numeric
			tracks      []byte
		)

		if err := rows.Scan(&a.ID, &a.ArtistID, &a.Name, &releaseDate, &price, &tracks); err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}

		a.ReleaseDate = DateOf(releaseDate)

		if a.Price, err = fromNumeric(price); err != nil {
			return nil, apperr.Internal(err)
		}
		if a.Tracks, err = decodeTracks(tracks); err != nil {
			return nil, apperr.Internal(err)
		}

		albums = append(albums, a)
	}

	return albums, dberr.Wrap(rows.Err(), "list_albums")
}

func (repository *PostgresRepository) Ping(context context.Context) error {
	return dberr.Wrap(repository.db.Ping(context), "ping")
}

// # Query Building

// listAlbumsQuery builds the album SELECT with one positional argument per
// present filter bound, after the artist id in $1.
func listAlbumsQuery(artistID int64, filter AlbumFilter) (string, []any) {
	var queryBuilder strings.Builder
	args := []any{artistID}

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.CatalogAlbum.ID, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Name,
		schema.CatalogAlbum.ReleaseDate, schema.CatalogAlbum.Price, schema.CatalogAlbum.Tracks,
		schema.CatalogAlbum.Table,
		schema.CatalogAlbum.ArtistID,
	))

	addBound := func(column, operator string, value any) {
		args = append(args, value)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s %s $%d", column, operator, len(args)))
	}

	if filter.PriceGTE != nil {
		addBound(schema.CatalogAlbum.Price, ">=", toNumeric(*filter.PriceGTE))
	}
	if filter.PriceLTE != nil {
		addBound(schema.CatalogAlbum.Price, "<=", toNumeric(*filter.PriceLTE))
	}
	if filter.DateGTE != nil {
		addBound(schema.CatalogAlbum.ReleaseDate, ">=", filter.DateGTE.Time())
	}
	if filter.DateLTE != nil {
		addBound(schema.CatalogAlbum.ReleaseDate, "<=", filter.DateLTE.Time())
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.CatalogAlbum.ID))
	return queryBuilder.String(), args
}

// # Column Codecs

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, fmt.Errorf("catalog: price is not a finite number")
	}

	coefficient := n.Int
	if coefficient == nil {
		coefficient = new(big.Int)
	}
	return decimal.NewFromBigInt(coefficient, n.Exp), nil
}

// encodeTracks returns nil for a nil listing so the column stores SQL NULL.
func encodeTracks(tracks []Track) (any, error) {
	if tracks == nil {
		return nil, nil
	}

	raw, err := json.Marshal(tracks)
	if err != nil {
		return nil, fmt.Errorf("catalog: encode tracks: %w", err)
	}
	return raw, nil
}

// decodeTracks maps SQL NULL to a nil listing and a JSON array to a non-nil slice.
func decodeTracks(raw []byte) ([]Track, error) {
	if raw == nil {
		return nil, nil
	}

	var tracks []Track
	if err := json.Unmarshal(raw, &tracks); err != nil {
		return nil, fmt.Errorf("catalog: decode tracks: %w", err)
	}
	if tracks == nil && string(raw) != "null" {
		tracks = []Track{}
	}
	return tracks, nil
}
