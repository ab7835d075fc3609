package upstream

import "encoding/json"

const (
	// ImageNotFound is the image value of albums for which no cover art could
	// be found.
	ImageNotFound = "Not found."

	// NoAlbumData is what the albums list contains when the artist has no
	// release groups at all.
	NoAlbumData = "No album data found."
)

// Album is a single release group of an artist. Image is filled in by
// Client.CoverArt and is either an URL or ImageNotFound.
type Album struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	Image string `json:"image"`

	noData bool
}

// NoAlbumDataRecord returns the placeholder which stands in for an empty list of
// albums.
func NoAlbumDataRecord() Album {
	return Album{noData: true}
}

// IsNoAlbumData tells whether the album is the "no album data" placeholder.
func (a Album) IsNoAlbumData() bool {
	return a.noData
}

// MarshalJSON encodes the placeholder as the bare NoAlbumData string and every
// other album as an object.
func (a Album) MarshalJSON() ([]byte, error) {
	if a.noData {
		return json.Marshal(NoAlbumData)
	}

	type plainAlbum Album
	return json.Marshal(plainAlbum(a))
}
