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

// Package paths locates the files that gopherale creates for itself, such as
// ROMs extracted from archives.
package paths

import (
	"os"
	"path/filepath"
)

// the resource directory when it is present in the working directory.
const baseResourcePath = ".gopherale"

// ResourcePath returns the path of the resource in the resource directory.
// The resource directory is ".gopherale" in the working directory if that
// exists, otherwise it is "gopherale" in the user's cache directory.
//
// The existence of the resource itself is not checked.
func ResourcePath(resource ...string) string {
	return filepath.Join(append([]string{basePath()}, resource...)...)
}

func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(dir, baseResourcePath[1:])
}
