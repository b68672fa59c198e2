// This file is part of Gopherale.
//
// Gopherale is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherale is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherale.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/nwaples/rardecode/v2"
)

// entry is a file in an archive with random access to its members.
type entry struct {
	name string
	dir  bool
	open func() (io.ReadCloser, error)
}

// first reads the first entry with a matching extension.
func first(path string, entries []entry, exts []string) (string, []byte, error) {
	for _, e := range entries {
		if e.dir || !hasExtension(e.name, exts) {
			continue
		}

		rc, err := e.open()
		if err != nil {
			return "", nil, curated.Errorf(ReadFailed, e.name, err)
		}
		defer rc.Close()

		data, err := readLimited(e.name, rc)
		if err != nil {
			return "", nil, err
		}
		return filepath.Base(e.name), data, nil
	}
	return "", nil, curated.Errorf(NoROM, path)
}

func fromZip(path string, exts []string) (string, []byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", nil, curated.Errorf(OpenFailed, path, err)
	}
	defer r.Close()

	entries := make([]entry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, entry{
			name: f.Name,
			dir:  f.FileInfo().IsDir(),
			open: f.Open,
		})
	}

	return first(path, entries, exts)
}

func from7z(path string, exts []string) (string, []byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return "", nil, curated.Errorf(OpenFailed, path, err)
	}
	defer r.Close()

	entries := make([]entry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, entry{
			name: f.Name,
			dir:  f.FileInfo().IsDir(),
			open: f.Open,
		})
	}

	return first(path, entries, exts)
}

// rar archives are read sequentially.
func fromRar(path string, exts []string) (string, []byte, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return "", nil, curated.Errorf(OpenFailed, path, err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, curated.Errorf(ReadFailed, path, err)
		}
		if hdr.IsDir || !hasExtension(hdr.Name, exts) {
			continue
		}

		data, err := readLimited(hdr.Name, r)
		if err != nil {
			return "", nil, err
		}
		return filepath.Base(hdr.Name), data, nil
	}

	return "", nil, curated.Errorf(NoROM, path)
}

// a gzip file is either a tar archive or a single compressed ROM.
func fromGzip(path string, exts []string) (string, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, curated.Errorf(OpenFailed, path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", nil, curated.Errorf(ReadFailed, path, err)
	}
	defer gz.Close()

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return fromTar(path, gz, exts)
	}

	data, err := readLimited(path, gz)
	if err != nil {
		return "", nil, err
	}

	name := filepath.Base(path)
	if gz.Name != "" {
		name = filepath.Base(gz.Name)
	} else if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-len(".gz")]
	}

	return name, data, nil
}

func fromTar(path string, r io.Reader, exts []string) (string, []byte, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, curated.Errorf(ReadFailed, path, err)
		}
		if hdr.Typeflag != tar.TypeReg || !hasExtension(hdr.Name, exts) {
			continue
		}

		data, err := readLimited(hdr.Name, tr)
		if err != nil {
			return "", nil, err
		}
		return filepath.Base(hdr.Name), data, nil
	}

	return "", nil, curated.Errorf(NoROM, path)
}
