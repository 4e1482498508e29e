// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skritch/tech-screen-api/internal/core/catalog"
	"github.com/skritch/tech-screen-api/internal/platform/apperr"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(t *testing.T, s string) *catalog.Date {
	d := mustDate(t, s)
	return &d
}

/*
TestAlbumFilter_Validate covers inverted, equal and one-sided bounds.
*/
func TestAlbumFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  catalog.AlbumFilter
		message string
	}{
		{"empty", catalog.AlbumFilter{}, ""},
		{"price_inverted", catalog.AlbumFilter{PriceGTE: price("75"), PriceLTE: price("50")}, catalog.MsgPriceRange},
		{"price_equal", catalog.AlbumFilter{PriceGTE: price("50"), PriceLTE: price("50.00")}, ""},
		{"price_one_sided", catalog.AlbumFilter{PriceGTE: price("75")}, ""},
		{"price_exact_decimal", catalog.AlbumFilter{PriceGTE: price("0.3"), PriceLTE: price("0.30000000000000001")}, ""},
		{"date_inverted", catalog.AlbumFilter{DateGTE: date(t, "2023-05-25"), DateLTE: date(t, "2023-05-15")}, catalog.MsgDateRange},
		{"date_equal", catalog.AlbumFilter{DateGTE: date(t, "2023-05-15"), DateLTE: date(t, "2023-05-15")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()

			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			if assert.NotNil(t, ae) {
				assert.Equal(t, apperr.CodeInvalidRange, ae.Code)
				assert.Equal(t, tt.message, ae.Message)
			}
		})
	}
}

/*
TestAlbumFilter_Matches checks inclusive, conjunctive predicates.
*/
func TestAlbumFilter_Matches(t *testing.T) {
	album := &catalog.Album{
		Price:       decimal.RequireFromString("100"),
		ReleaseDate: mustDate(t, "2023-06-01"),
	}

	tests := []struct {
		name   string
		filter catalog.AlbumFilter
		want   bool
	}{
		{"no_bounds", catalog.AlbumFilter{}, true},
		{"price_gte_below", catalog.AlbumFilter{PriceGTE: price("75")}, true},
		{"price_gte_inclusive", catalog.AlbumFilter{PriceGTE: price("100.00")}, true},
		{"price_gte_above", catalog.AlbumFilter{PriceGTE: price("100.01")}, false},
		{"price_lte_inclusive", catalog.AlbumFilter{PriceLTE: price("100")}, true},
		{"price_lte_below", catalog.AlbumFilter{PriceLTE: price("99.99")}, false},
		{"price_lte_zero", catalog.AlbumFilter{PriceLTE: price("0")}, false},
		{"date_gte_inclusive", catalog.AlbumFilter{DateGTE: date(t, "2023-06-01")}, true},
		{"date_gte_after", catalog.AlbumFilter{DateGTE: date(t, "2023-06-02")}, false},
		{"date_lte_inclusive", catalog.AlbumFilter{DateLTE: date(t, "2023-06-01")}, true},
		{"date_lte_before", catalog.AlbumFilter{DateLTE: date(t, "2023-05-31")}, false},
		{"conjunctive_all_hold", catalog.AlbumFilter{PriceGTE: price("50"), PriceLTE: price("150"), DateGTE: date(t, "2023-01-01"), DateLTE: date(t, "2023-12-31")}, true},
		{"conjunctive_one_fails", catalog.AlbumFilter{PriceGTE: price("50"), DateLTE: date(t, "2023-05-31")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(album))
		})
	}
}
