package stubserver

import "github.com/abelgk/crately/internal/domain/entity"

// Seed fills the store with a small album catalog for local development.
func Seed(store *AlbumStore) {
	albums := []entity.Album{
		{Title: "Kind of Blue", ArtistName: "Miles Davis"},
		{Title: "Blue Train", ArtistName: "John Coltrane"},
		{Title: "Abbey Road", ArtistName: "The Beatles"},
		{Title: "Rumours", ArtistName: "Fleetwood Mac"},
		{Title: "Nevermind", ArtistName: "Nirvana"},
		{Title: "OK Computer", ArtistName: "Radiohead"},
		{Title: "Aja", ArtistName: "Steely Dan"},
		{Title: "Hounds of Love", ArtistName: "Kate Bush"},
		{Title: "Illmatic", ArtistName: "Nas"},
		{Title: "Blue", ArtistName: "Joni Mitchell"},
		{Title: "Purple Rain", ArtistName: "Prince"},
		{Title: "Harvest", ArtistName: "Neil Young"},
	}
	for _, a := range albums {
		store.Add(a)
	}
}
