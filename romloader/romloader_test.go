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

package romloader_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/romloader"
	"github.com/jetsetilly/gopherale/test"
)

var romBytes = []byte{0xd8, 0x78, 0xa2, 0xff, 0x9a, 0xa9, 0x00, 0x95}

func create(t *testing.T, name string, write func(f *os.File)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	write(f)
	test.DemandSuccess(t, f.Close())
	return path
}

func createZip(t *testing.T, members map[string][]byte) string {
	return create(t, "roms.zip", func(f *os.File) {
		w := zip.NewWriter(f)
		for name, data := range members {
			fw, err := w.Create(name)
			test.DemandSuccess(t, err)
			_, err = fw.Write(data)
			test.DemandSuccess(t, err)
		}
		test.DemandSuccess(t, w.Close())
	})
}

func TestDetect(t *testing.T) {
	exts := []string{".bin", ".a26"}

	test.ExpectEquality(t, romloader.Detect([]byte{0x50, 0x4b, 0x03, 0x04}, "x.dat", exts), romloader.Zip)
	test.ExpectEquality(t, romloader.Detect([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}, "x.dat", exts), romloader.SevenZip)
	test.ExpectEquality(t, romloader.Detect([]byte("Rar!"), "x.dat", exts), romloader.Rar)
	test.ExpectEquality(t, romloader.Detect([]byte{0x1f, 0x8b}, "x.dat", exts), romloader.Gzip)

	test.ExpectEquality(t, romloader.Detect(nil, "GAME.ZIP", exts), romloader.Zip)
	test.ExpectEquality(t, romloader.Detect(nil, "game.tgz", exts), romloader.Gzip)
	test.ExpectEquality(t, romloader.Detect(nil, "game.7z", exts), romloader.SevenZip)
	test.ExpectEquality(t, romloader.Detect(nil, "game.A26", exts), romloader.Raw)
	test.ExpectEquality(t, romloader.Detect(nil, "game.sms", exts), romloader.Unknown)
}

func TestLoadRaw(t *testing.T) {
	path := create(t, "pitfall.bin", func(f *os.File) { f.Write(romBytes) })

	rom, err := romloader.Load(path, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Name, "pitfall.bin")
	test.ExpectEquality(t, rom.Format, romloader.Raw)
	test.ExpectSuccess(t, bytes.Equal(rom.Data, romBytes))

	// a file shorter than the header
	path = create(t, "tiny.bin", func(f *os.File) { f.Write([]byte{1, 2}) })
	rom, err = romloader.Load(path, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(rom.Data, []byte{1, 2}))
}

func TestLoadZip(t *testing.T) {
	path := createZip(t, map[string][]byte{"docs/readme.txt": []byte("hello"), "roms/Pitfall.A26": romBytes})

	rom, err := romloader.Load(path, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Name, "Pitfall.A26")
	test.ExpectEquality(t, rom.Format, romloader.Zip)
	test.ExpectSuccess(t, bytes.Equal(rom.Data, romBytes))

	path = createZip(t, map[string][]byte{"readme.txt": []byte("hello")})
	_, err = romloader.Load(path, nil)
	test.ExpectSuccess(t, curated.Is(err, romloader.NoROM))
}

func TestLoadGzip(t *testing.T) {
	path := create(t, "pitfall.bin.gz", func(f *os.File) {
		w := gzip.NewWriter(f)
		w.Write(romBytes)
		test.DemandSuccess(t, w.Close())
	})

	rom, err := romloader.Load(path, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Name, "pitfall.bin")
	test.ExpectEquality(t, rom.Format, romloader.Gzip)
	test.ExpectSuccess(t, bytes.Equal(rom.Data, romBytes))
}

func TestLoadTarGzip(t *testing.T) {
	path := create(t, "roms.tar.gz", func(f *os.File) {
		gz := gzip.NewWriter(f)
		tw := tar.NewWriter(gz)
		for _, m := range []struct {
			name string
			data []byte
		}{
			{"notes.txt", []byte("notes")},
			{"dir/river.bin", romBytes},
		} {
			test.DemandSuccess(t, tw.WriteHeader(&tar.Header{
				Name:     m.name,
				Mode:     0o644,
				Size:     int64(len(m.data)),
				Typeflag: tar.TypeReg,
			}))
			_, err := tw.Write(m.data)
			test.DemandSuccess(t, err)
		}
		test.DemandSuccess(t, tw.Close())
		test.DemandSuccess(t, gz.Close())
	})

	rom, err := romloader.Load(path, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Name, "river.bin")
	test.ExpectSuccess(t, bytes.Equal(rom.Data, romBytes))
}

func TestLoadBadArchives(t *testing.T) {
	for _, name := range []string{"fake.7z", "fake.rar", "fake.zip", "fake.gz"} {
		path := create(t, name, func(f *os.File) { f.Write([]byte("not an archive")) })
		_, err := romloader.Load(path, nil)
		test.ExpectFailure(t, err, name)
	}

	path := create(t, "game.sms", func(f *os.File) { f.Write(romBytes) })
	_, err := romloader.Load(path, nil)
	test.ExpectSuccess(t, curated.Is(err, romloader.Unsupported))

	_, err = romloader.Load(filepath.Join(t.TempDir(), "missing.bin"), nil)
	test.ExpectSuccess(t, curated.Is(err, romloader.OpenFailed))
}

func TestTooLarge(t *testing.T) {
	path := create(t, "large.bin.gz", func(f *os.File) {
		w := gzip.NewWriter(f)
		w.Write(make([]byte, romloader.MaxROMSize+1))
		test.DemandSuccess(t, w.Close())
	})

	_, err := romloader.Load(path, nil)
	test.ExpectSuccess(t, curated.Is(err, romloader.TooLarge))
}

func TestMaterialise(t *testing.T) {
	cache := t.TempDir()

	raw := create(t, "plain.bin", func(f *os.File) { f.Write(romBytes) })
	p, err := romloader.Materialise(raw, cache, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, raw)

	archive := createZip(t, map[string][]byte{"adventure.bin": romBytes})
	p, err = romloader.Materialise(archive, cache, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(p), "adventure.bin")

	data, err := os.ReadFile(p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(data, romBytes))

	// the same archive gives the same path
	q, err := romloader.Materialise(archive, cache, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)

	// a different ROM with the same name does not collide
	other := createZip(t, map[string][]byte{"adventure.bin": []byte{1, 2, 3}})
	q, err = romloader.Materialise(other, cache, nil)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, q, p)
}
