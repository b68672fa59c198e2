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

// Package codec is the structured encoding used to persist games and
// save-states.
//
// Values are written to an Encoder in order and read back from a Decoder in
// the same order. Only strings and byte sequences are required. Byte
// sequences are always self-delimiting, so the opaque data produced by the
// engine can be embedded without any further framing.
//
// Two formats are provided. Wire uses the protocol buffer wire format, each
// value being a length-delimited field with field numbers that count up from
// one. CBOR writes a stream of CBOR text and byte strings.
package codec

import (
	"bytes"
	"io"

	"github.com/jetsetilly/gopherale/curated"
)

// Sentinal error patterns.
const (
	Malformed = "codec: malformed %s: %v"
	Truncated = "codec: truncated %s"
	TooLarge  = "codec: %s too large (%d bytes)"
)

// MaxLength is the largest value that a Decoder will accept. It protects
// against allocating huge amounts of memory for corrupt input.
const MaxLength = 64 * 1024 * 1024

// Encoder writes values in order.
type Encoder interface {
	EncodeString(s string) error
	EncodeBytes(b []byte) error
}

// Decoder reads values in the order they were encoded.
type Decoder interface {
	DecodeString() (string, error)
	DecodeBytes() ([]byte, error)
}

// Format creates matching Encoders and Decoders.
type Format interface {
	Name() string
	NewEncoder(w io.Writer) Encoder
	NewDecoder(r io.Reader) Decoder
}

// Formats lists the available formats. The first entry is the default.
var Formats = []Format{Wire, CBOR}

// Lookup returns the named format or nil if there is no such format.
func Lookup(name string) Format {
	for _, f := range Formats {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Marshal calls the encode function with an Encoder for the format and
// returns the encoded data.
func Marshal(f Format, encode func(Encoder) error) ([]byte, error) {
	var b bytes.Buffer
	if err := encode(f.NewEncoder(&b)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// exhaustible is implemented by the Decoders of this package.
type exhaustible interface {
	remaining() bool
}

// Unmarshal calls the decode function with a Decoder reading the data. The
// decode function must consume all of the data.
func Unmarshal(f Format, data []byte, decode func(Decoder) error) error {
	dec := f.NewDecoder(bytes.NewReader(data))
	if err := decode(dec); err != nil {
		return err
	}
	if ex, ok := dec.(exhaustible); ok && ex.remaining() {
		return curated.Errorf(Malformed, f.Name(), "trailing data")
	}
	return nil
}
