package schema

// CatalogAlbumTable represents the 'album' table
type CatalogAlbumTable struct {
	Table       string
	ID          string
	ArtistID    string
	Name        string
	ReleaseDate string
	Price       string
	Tracks      string
}

// CatalogAlbum is the schema definition for album
var CatalogAlbum = CatalogAlbumTable{
	Table:       "album",
	ID:          "id",
	ArtistID:    "artist_id",
	Name:        "name",
	ReleaseDate: "release_date",
	Price:       "price",
	Tracks:      "tracks",
}

func (t CatalogAlbumTable) Columns() []string {
	return []string{t.ID, t.ArtistID, t.Name, t.ReleaseDate, t.Price, t.Tracks}
}
