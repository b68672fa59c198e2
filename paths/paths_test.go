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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherale/paths"
	"github.com/jetsetilly/gopherale/test"
)

func TestResourcePath(t *testing.T) {
	p := paths.ResourcePath("roms", "game.bin")
	test.ExpectSuccess(t, strings.HasSuffix(p, filepath.Join("gopherale", "roms", "game.bin")), p)
}

func TestLocalResourceDirectory(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopherale", 0o755))

	test.ExpectEquality(t, paths.ResourcePath("roms"), filepath.Join(".gopherale", "roms"))
}
