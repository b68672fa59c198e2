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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherale/curated"
)

// Sentinal error patterns.
const (
	OpenFailed  = "romloader: cannot open %s: %v"
	ReadFailed  = "romloader: cannot read %s: %v"
	Unsupported = "romloader: unsupported file format (%s)"
	NoROM       = "romloader: no rom file in archive (%s)"
	TooLarge    = "romloader: %s is larger than %d bytes"
	CacheFailed = "romloader: cannot write rom to cache: %v"
)

// MaxROMSize is the largest ROM that will be read.
const MaxROMSize = 8 * 1024 * 1024

// DefaultExtensions are the filename extensions of Atari 2600 ROMs.
var DefaultExtensions = []string{".bin", ".a26", ".rom"}

// Format of a file.
type Format int

// List of valid Format values.
const (
	Unknown Format = iota
	Raw
	Zip
	SevenZip
	Gzip
	Rar
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Zip:
		return "zip"
	case SevenZip:
		return "7z"
	case Gzip:
		return "gzip"
	case Rar:
		return "rar"
	}
	return "unknown"
}

var magic = []struct {
	prefix []byte
	format Format
}{
	{[]byte{0x50, 0x4b, 0x03, 0x04}, Zip},
	{[]byte{0x50, 0x4b, 0x05, 0x06}, Zip},
	{[]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}, SevenZip},
	{[]byte{0x52, 0x61, 0x72, 0x21}, Rar},
	{[]byte{0x1f, 0x8b}, Gzip},
}

var archiveExtensions = map[string]Format{
	".zip": Zip,
	".7z":  SevenZip,
	".rar": Rar,
	".gz":  Gzip,
	".tgz": Gzip,
}

// Detect the format of a file from its first few bytes and its name.
func Detect(header []byte, name string, exts []string) Format {
	for _, m := range magic {
		if bytes.HasPrefix(header, m.prefix) {
			return m.format
		}
	}

	if f, ok := archiveExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}

	if hasExtension(name, exts) {
		return Raw
	}

	return Unknown
}

// hasExtension is case insensitive.
func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, strings.ToLower(e)) {
			return true
		}
	}
	return false
}

// readLimited reads everything from r. an error is returned if there is more
// than MaxROMSize bytes.
func readLimited(name string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxROMSize+1))
	if err != nil {
		return nil, curated.Errorf(ReadFailed, name, err)
	}
	if len(data) > MaxROMSize {
		return nil, curated.Errorf(TooLarge, name, MaxROMSize)
	}
	return data, nil
}

// ROM is the data read by Load().
type ROM struct {
	// the filename of the ROM. for archives this is the name of the file
	// inside the archive, without any directory
	Name string

	Data   []byte
	Format Format
}

// Load the ROM at path. If the file is an archive then the first file with
// one of the extensions is loaded. If exts is empty then DefaultExtensions is
// used.
func Load(path string, exts []string) (ROM, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	f, err := os.Open(path)
	if err != nil {
		return ROM{}, curated.Errorf(OpenFailed, path, err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return ROM{}, curated.Errorf(ReadFailed, path, err)
	}

	format := Detect(header[:n], path, exts)

	var rom ROM
	switch format {
	case Raw:
		rom.Name = filepath.Base(path)
		rom.Data, err = readLimited(path, io.MultiReader(bytes.NewReader(header[:n]), f))
	case Zip:
		rom.Name, rom.Data, err = fromZip(path, exts)
	case SevenZip:
		rom.Name, rom.Data, err = from7z(path, exts)
	case Rar:
		rom.Name, rom.Data, err = fromRar(path, exts)
	case Gzip:
		rom.Name, rom.Data, err = fromGzip(path, exts)
	default:
		return ROM{}, curated.Errorf(Unsupported, path)
	}
	if err != nil {
		return ROM{}, err
	}
	rom.Format = format

	return rom, nil
}
