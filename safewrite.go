package gart

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/rs/zerolog/log"
)

// ErrFormat is returned for file extensions nothing can write.
var ErrFormat = errors.New("unsupported file format")

// Writer is a surface that can save itself. Context writes all three
// formats, RasterContext only PNG.
type Writer interface {
	WritePNG(fname string) error
}

type vectorWriter interface {
	WriteSVG(fname string) error
	WritePDF(fname string) error
}

// SafeWrite noisily saves to tmp file and then moves
func (s Seed) SafeWrite(w Writer, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(w, fname); err != nil {
		log.Error().Err(err).Str("file", fname).Msg("problem saving")
		return "", err
	}
	log.Info().Str("file", fname).Msg("saved")
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(w Writer, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	// Note: the temp file lives next to the target so the rename stays on one drive
	tmpfile, err := os.CreateTemp(path.Dir(fname), "gart.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()

	if err := writeAs(w, tmpfile.Name(), ext); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}

func writeAs(w Writer, fname, ext string) error {
	switch ext {
	case ".png":
		return w.WritePNG(fname)
	case ".svg", ".pdf":
		vw, ok := w.(vectorWriter)
		if !ok {
			return fmt.Errorf("%s from a raster surface: %w", ext, ErrFormat)
		}
		if ext == ".svg" {
			return vw.WriteSVG(fname)
		}
		return vw.WritePDF(fname)
	}
	return fmt.Errorf("%s: %w", ext, ErrFormat)
}

// MaybeCreateDir creates dir and its parents if it is missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
