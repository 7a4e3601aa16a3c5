package romloader

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

func extractZIP(path string, extensions []string) ([]byte, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !hasImageExt(f.Name, extensions) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open %s in zip: %w", f.Name, err)
		}
		data, err := readCapped(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("read %s from zip: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}
	return nil, "", ErrNoImage
}

func extract7z(path string, extensions []string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !hasImageExt(f.Name, extensions) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open %s in 7z: %w", f.Name, err)
		}
		data, err := readCapped(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("read %s from 7z: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}
	return nil, "", ErrNoImage
}

func extractRAR(path string, extensions []string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open rar: %w", err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("read rar entry: %w", err)
		}
		if header.IsDir || !hasImageExt(header.Name, extensions) {
			continue
		}
		data, err := readCapped(r)
		if err != nil {
			return nil, "", fmt.Errorf("read %s from rar: %w", header.Name, err)
		}
		return data, filepath.Base(header.Name), nil
	}
	return nil, "", ErrNoImage
}

// extractGzip handles plain .gz (decompressed content is the image) and
// .tar.gz/.tgz (first matching tar entry wins).
func extractGzip(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open gzip: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("read gzip: %w", err)
	}
	defer gr.Close()

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractTar(gr, extensions)
	}

	data, err := readCapped(gr)
	if err != nil {
		return nil, "", fmt.Errorf("decompress gzip: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return data, name, nil
}

func extractTar(r io.Reader, extensions []string) ([]byte, string, error) {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("read tar entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !hasImageExt(header.Name, extensions) {
			continue
		}
		data, err := readCapped(tr)
		if err != nil {
			return nil, "", fmt.Errorf("read %s from tar: %w", header.Name, err)
		}
		return data, filepath.Base(header.Name), nil
	}
	return nil, "", ErrNoImage
}
