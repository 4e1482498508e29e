package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
)

// AlbumFilter holds the optional inclusive bounds applied when listing an
// artist's albums. A nil bound places no constraint on its field; all present
// bounds must hold.
type AlbumFilter struct {
	PriceGTE *decimal.Decimal
	PriceLTE *decimal.Decimal
	DateGTE  *Date
	DateLTE  *Date
}

// AlbumQuery is a filtered album listing plus the track projection toggle.
type AlbumQuery struct {
	Filter        AlbumFilter
	IncludeTracks bool
}

// Validate rejects bound pairs whose lower bound exceeds the upper bound.
// Equal bounds select a single point and are valid.
func (f AlbumFilter) Validate() error {
	if f.PriceGTE != nil && f.PriceLTE != nil && f.PriceGTE.GreaterThan(*f.PriceLTE) {
		return apperr.InvalidRange(MsgPriceRange)
	}
	if f.DateGTE != nil && f.DateLTE != nil && f.DateGTE.After(*f.DateLTE) {
		return apperr.InvalidRange(MsgDateRange)
	}
	return nil
}

// Matches reports whether album satisfies every present bound.
func (f AlbumFilter) Matches(album *Album) bool {
	if f.PriceGTE != nil && album.Price.LessThan(*f.PriceGTE) {
		return false
	}
	if f.PriceLTE != nil && album.Price.GreaterThan(*f.PriceLTE) {
		return false
	}
	if f.DateGTE != nil && album.ReleaseDate.Before(*f.DateGTE) {
		return false
	}
	if f.DateLTE != nil && album.ReleaseDate.After(*f.DateLTE) {
		return false
	}
	return true
}
