package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkapur/auralist/logging"
)

// M3U line markers. M3U is duration-less here: the engine never inspects the
// audio, so every EXTINF carries a zero duration.
const (
	m3uHeader       = "#EXTM3U"
	m3uNameMarker   = "#PLAYLIST:"
	m3uInfoMarker   = "#EXTINF:"
	m3uInfoDuration = 0
)

// Write serializes a playlist to dest in M3U format, creating parent
// directories as needed. Every song path is converted to its absolute form
// before writing. I/O failures are returned (and logged), never panicked.
func Write(p *Playlist, dest string, logger logging.Logger) error {
	logger = logging.Or(logger).WithFields(logging.Fields{
		"component": "playlist_writer",
		"dest":      dest,
	})

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		logger.Error(err, "Failed to create playlist directory")
		return fmt.Errorf("create playlist directory: %w", err)
	}

	file, err := os.Create(dest)
	if err != nil {
		logger.Error(err, "Failed to create playlist file")
		return fmt.Errorf("create playlist file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, m3uHeader)
	if p.Name != "" {
		fmt.Fprintf(w, "%s %s\n", m3uNameMarker, p.Name)
	}

	for _, path := range p.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		fmt.Fprintf(w, "%s %d, %s\n", m3uInfoMarker, m3uInfoDuration, stem(abs))
		fmt.Fprintln(w, abs)
	}

	if err := w.Flush(); err != nil {
		logger.Error(err, "Failed to write playlist")
		return fmt.Errorf("write playlist: %w", err)
	}

	logger.Info("Playlist saved", logging.Fields{"songs": p.Len()})
	return nil
}

// stem returns the filename without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
