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

package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/jetsetilly/gopherale/curated"
	"google.golang.org/protobuf/encoding/protowire"
)

type wireFormat struct{}

// Wire is the protocol buffer wire format.
var Wire Format = wireFormat{}

func (wireFormat) Name() string {
	return "wire"
}

func (wireFormat) NewEncoder(w io.Writer) Encoder {
	return &wireEncoder{w: w}
}

func (wireFormat) NewDecoder(r io.Reader) Decoder {
	return &wireDecoder{r: bufio.NewReader(r)}
}

type wireEncoder struct {
	w     io.Writer
	field protowire.Number
	buf   []byte
}

func (enc *wireEncoder) write(b []byte) error {
	enc.field++
	enc.buf = protowire.AppendTag(enc.buf[:0], enc.field, protowire.BytesType)
	enc.buf = protowire.AppendBytes(enc.buf, b)
	_, err := enc.w.Write(enc.buf)
	return err
}

func (enc *wireEncoder) EncodeString(s string) error {
	return enc.write([]byte(s))
}

func (enc *wireEncoder) EncodeBytes(b []byte) error {
	return enc.write(b)
}

type wireDecoder struct {
	r     *bufio.Reader
	field protowire.Number
}

func (dec *wireDecoder) varint(what string) (uint64, error) {
	v, err := binary.ReadUvarint(dec.r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, curated.Errorf(Truncated, what)
		}
		return 0, curated.Errorf(Malformed, what, err)
	}
	return v, nil
}

func (dec *wireDecoder) read(what string) ([]byte, error) {
	tag, err := dec.varint(what)
	if err != nil {
		return nil, err
	}

	num, typ := protowire.DecodeTag(tag)
	dec.field++
	if num != dec.field {
		return nil, curated.Errorf(Malformed, what, "unexpected field number")
	}
	if typ != protowire.BytesType {
		return nil, curated.Errorf(Malformed, what, "unexpected wire type")
	}

	n, err := dec.varint(what)
	if err != nil {
		return nil, err
	}
	if n > MaxLength {
		return nil, curated.Errorf(TooLarge, what, n)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(dec.r, b); err != nil {
		return nil, curated.Errorf(Truncated, what)
	}

	return b, nil
}

func (dec *wireDecoder) DecodeString() (string, error) {
	b, err := dec.read("string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", curated.Errorf(Malformed, "string", "invalid utf-8")
	}
	return string(b), nil
}

func (dec *wireDecoder) DecodeBytes() ([]byte, error) {
	return dec.read("bytes")
}

func (dec *wireDecoder) remaining() bool {
	_, err := dec.r.Peek(1)
	return err == nil
}
