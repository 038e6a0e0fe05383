package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nkapur/auralist/features"
	"github.com/nkapur/auralist/logging"
)

// supportedExtensions are the audio formats handed to ffmpeg.
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".aac":  true,
}

// ProcessDirectory extracts features for every supported audio file under
// dir and writes them as one CSV row each to out. Files that fail to decode
// are skipped with a warning; the walk continues. Returns the number of rows
// written. Refuses to overwrite an existing output unless force is set.
func ProcessDirectory(ctx context.Context, dir, out string, force bool, logger logging.Logger) (int, error) {
	logger = logging.Or(logger).WithFields(logging.Fields{
		"component": "feature_extractor",
		"dir":       dir,
	})

	if !force {
		if _, err := os.Stat(out); err == nil {
			return 0, fmt.Errorf("output file %s already exists (use force to overwrite)", out)
		}
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan directory: %w", err)
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no supported audio files under %s", dir)
	}

	decoder := NewDecoder(nil, logger)

	file, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{
		features.ColumnFilePath,
		features.ColumnFileName,
		features.ColumnFileExtension,
		features.ColumnFileSizeMB,
	}
	header = append(header, FeatureNames()...)
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	written := 0
	for _, path := range paths {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}

		audio, err := decoder.Decode(ctx, path)
		if err != nil {
			logger.Warn("Skipping file, decode failed", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}

		row, err := buildRow(path, Features(audio))
		if err != nil {
			logger.Warn("Skipping file, cannot stat", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		if err := w.Write(row); err != nil {
			return written, fmt.Errorf("write row: %w", err)
		}
		written++

		logger.Debug("Extracted features", logging.Fields{"path": path})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return written, fmt.Errorf("flush output: %w", err)
	}

	logger.Info("Feature extraction completed", logging.Fields{
		"files":   len(paths),
		"written": written,
		"output":  out,
	})

	return written, nil
}

func buildRow(path string, feats RowFeatures) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(abs)
	ext := filepath.Ext(abs)
	row := []string{
		abs,
		base,
		strings.TrimPrefix(ext, "."),
		strconv.FormatFloat(float64(info.Size())/(1024*1024), 'f', 2, 64),
	}
	for _, v := range feats.Values() {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return row, nil
}
