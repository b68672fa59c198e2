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
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/logger"
	"github.com/jetsetilly/gopherale/paths"
)

// Materialise returns the path of a plain file containing the ROM at path.
// A plain ROM file is returned as it is. A ROM in an archive is written to the
// cache directory, in a sub-directory named after the hash of the ROM data,
// and the path of the new file is returned. The cached file is reused if it is
// already present.
//
// If dir is empty the ROM is cached in the "roms" resource directory.
func Materialise(path string, dir string, exts []string) (string, error) {
	rom, err := Load(path, exts)
	if err != nil {
		return "", err
	}
	if rom.Format == Raw {
		return path, nil
	}

	if dir == "" {
		dir = paths.ResourcePath("roms")
	}

	dir = filepath.Join(dir, fmt.Sprintf("%.8x", sha1.Sum(rom.Data)))
	cached := filepath.Join(dir, rom.Name)

	if existing, err := os.ReadFile(cached); err == nil && bytes.Equal(existing, rom.Data) {
		return cached, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", curated.Errorf(CacheFailed, err)
	}
	if err := os.WriteFile(cached, rom.Data, 0o644); err != nil {
		return "", curated.Errorf(CacheFailed, err)
	}

	logger.Logf(logger.Allow, "romloader", "extracted %s from %s archive to %s", rom.Name, rom.Format, cached)

	return cached, nil
}
