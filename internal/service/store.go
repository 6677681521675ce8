package service

import (
	"encoding/base64"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrReferenceMissing is returned when a local input file is absent.
	ErrReferenceMissing = errors.New("reference image not found")
	// ErrNoModelURL is returned when a finished job exposes no usable model.
	ErrNoModelURL = errors.New("no model URL in result")
	// ErrSkipped marks an asset that was deliberately not generated.
	ErrSkipped = errors.New("skipped")
)

// Store is the local artifact store used by the generators
type Store interface {
	Exists(p string) bool
	Read(p string) ([]byte, error)
	Write(p string, data []byte) error
	WriteStream(p string, r io.Reader) (int64, error)
	Backup(p, backupDir string) (string, bool, error)
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// ImageMimeType picks the MIME type of a reference image by extension,
// defaulting to image/png.
func ImageMimeType(path string) string {
	if mt, ok := imageMimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "image/png"
}

// DataURI encodes data as a base64 data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// glbMimeType is the content type of binary glTF models
const glbMimeType = "model/gltf-binary"
