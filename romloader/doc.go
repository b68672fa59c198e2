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

// Package romloader reads ROM data from plain files and from archives. The
// supported archive formats are zip, 7z, rar, gzip and gzip compressed tar.
//
// Archives are recognised by their leading magic bytes. If the magic bytes
// are not recognised the filename extension is used instead. The first
// file in an archive with a matching ROM extension is the one that is used.
//
// The engine can only load ROMs from a plain file. Materialise() extracts an
// archived ROM to a cache directory and returns a path that can be given to
// the engine.
package romloader
