package schema

// CatalogArtistTable represents the 'artist' table
type CatalogArtistTable struct {
	Table string
	ID    string
	Name  string
}

// CatalogArtist is the schema definition for artist
var CatalogArtist = CatalogArtistTable{
	Table: "artist",
	ID:    "id",
	Name:  "name",
}

func (t CatalogArtistTable) Columns() []string {
	return []string{t.ID, t.Name}
}
