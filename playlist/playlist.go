// Package playlist grows seed songs into bounded playlists and persists them
// in the M3U text format.
package playlist

import "errors"

// Playlist is an ordered sequence of absolute song paths with an optional
// display name. It is built fresh per generation request.
type Playlist struct {
	Name  string
	Paths []string
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.Paths)
}

// ErrNoValidSeeds reports that none of the requested seed songs exist in the
// catalog. It is a reported failure of the build request, not a crash: the
// caller decides whether to retry with different seeds.
var ErrNoValidSeeds = errors.New("no valid seed songs found in catalog")
