package classify

import "testing"

func TestGenre(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Label
	}{
		{"party keyword", "/music/Party Anthem.mp3", GenreParty},
		{"remix keyword", "/music/old_song_remix.mp3", GenreParty},
		{"devotional keyword", "/music/hanuman_bhajan.mp3", GenreDevotional},
		{"classical keyword", "/music/raga_yaman.flac", GenreClassical},
		{"folk keyword", "/music/garba_night.mp3", GenreFolk},
		{"ghazal keyword", "/music/mehfil_ghazal.mp3", GenreGhazal},
		{"romance keyword", "/music/pyar_hua.mp3", GenreMelody},
		{"sad keyword", "/music/judaai.mp3", GenreSad},
		{"rock keyword", "/music/rock_on.mp3", GenreDance},
		{"party beats devotional", "/music/dj_bhajan.mp3", GenreParty},
		{"default", "/music/track01.mp3", GenreFilm},
		{"keyword only in directory", "/music/ghazals/track01.mp3", GenreFilm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Genre(tt.path); got != tt.want {
				t.Errorf("Genre(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
