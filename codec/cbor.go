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
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gopherale/curated"
)

type cborFormat struct{}

// CBOR is a stream of CBOR data items.
var CBOR Format = cborFormat{}

// decoding options. invalid text strings are rejected in the same way as the
// wire format.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		UTF8: cbor.UTF8RejectInvalid,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

func (cborFormat) Name() string {
	return "cbor"
}

func (cborFormat) NewEncoder(w io.Writer) Encoder {
	return cborEncoder{enc: cbor.NewEncoder(w)}
}

func (cborFormat) NewDecoder(r io.Reader) Decoder {
	return &cborDecoder{r: r, dec: cborDecMode.NewDecoder(r)}
}

type cborEncoder struct {
	enc *cbor.Encoder
}

func (enc cborEncoder) EncodeString(s string) error {
	return enc.enc.Encode(s)
}

func (enc cborEncoder) EncodeBytes(b []byte) error {
	// the cbor package encodes a nil slice as CBOR null
	if b == nil {
		b = []byte{}
	}
	return enc.enc.Encode(b)
}

type cborDecoder struct {
	r   io.Reader
	dec *cbor.Decoder
}

func cborError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return curated.Errorf(Truncated, what)
	}
	return curated.Errorf(Malformed, what, err)
}

// major types of the data items that can be decoded
const (
	cborByteString = 2
	cborTextString = 3
)

// item reads the next data item and checks its major type. the cbor package
// decodes null and undefined into any type so they must be rejected here.
func (dec *cborDecoder) item(what string, major byte) (cbor.RawMessage, error) {
	var raw cbor.RawMessage
	if err := dec.dec.Decode(&raw); err != nil {
		return nil, cborError(what, err)
	}
	if len(raw) == 0 || raw[0]>>5 != major {
		return nil, curated.Errorf(Malformed, what, "unexpected data item")
	}
	return raw, nil
}

func (dec *cborDecoder) DecodeString() (string, error) {
	raw, err := dec.item("string", cborTextString)
	if err != nil {
		return "", err
	}
	var s string
	if err := cborDecMode.Unmarshal(raw, &s); err != nil {
		return "", cborError("string", err)
	}
	return s, nil
}

func (dec *cborDecoder) DecodeBytes() ([]byte, error) {
	raw, err := dec.item("bytes", cborByteString)
	if err != nil {
		return nil, err
	}
	var b []byte
	if err := cborDecMode.Unmarshal(raw, &b); err != nil {
		return nil, cborError("bytes", err)
	}
	if len(b) > MaxLength {
		return nil, curated.Errorf(TooLarge, "bytes", len(b))
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func (dec *cborDecoder) remaining() bool {
	var p [1]byte
	if n, _ := dec.dec.Buffered().Read(p[:]); n > 0 {
		return true
	}
	n, _ := dec.r.Read(p[:])
	return n > 0
}
