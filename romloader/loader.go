// Package romloader loads cart images from plain files or compressed
// archives (zip, gzip, tar.gz, 7z, rar). Loading is all-or-nothing: a
// short or unreadable image returns an error and leaves nothing behind.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Largest image a dmg cart can declare, used as a safety cap when
// decompressing.
const maxImageSize = 8 * 1024 * 1024

var (
	// ErrNoImage means an archive held no file with a known extension.
	ErrNoImage = errors.New("no cart image found in archive")
	// ErrTooLarge means the (decompressed) content blew the size cap.
	ErrTooLarge = errors.New("image exceeds maximum size")
)

// archive magic numbers, checked before falling back to extensions
var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

type format int

const (
	formatRaw format = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// Load reads a cart image from path. Archives are detected by magic bytes
// with the file extension as a fallback, and the first entry matching one
// of the given image extensions (e.g. ".gb") is extracted. Anything else
// is a plain file and is returned whole, whatever its extension.
//
// The second return value is the image's basename, useful for window
// titles.
func Load(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("read image header: %w", err)
	}

	switch detectFormat(header[:n], path) {
	case formatZIP:
		return extractZIP(path, extensions)

	case format7z:
		return extract7z(path, extensions)

	case formatGzip:
		return extractGzip(path, extensions)

	case formatRAR:
		return extractRAR(path, extensions)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("seek image: %w", err)
	}
	data, err := readCapped(f)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return data, filepath.Base(path), nil
}

func detectFormat(header []byte, path string) format {
	if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEmpty) {
		return formatZIP
	}
	if bytes.HasPrefix(header, magicRAR) {
		return formatRAR
	}
	if bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	}

	return formatRaw
}

// hasImageExt checks name against the image extensions, case-insensitive.
func hasImageExt(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// readCapped reads all of r up to the size cap.
func readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
