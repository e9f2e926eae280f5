// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	_cbor "github.com/fxamacker/cbor/v2"
)

// Term is a schema-free representation of a single decoded CBOR item.
// Unlike decoding into plain Go values, a Term preserves array order, map
// entry order (including duplicate keys), and the full CBOR negative
// integer range. Terms are not modified after DecodeTerm returns one.
type Term interface {
	isTerm()
}

// UnsignedTerm is a CBOR major type 0 unsigned integer. CBOR simple
// values also collapse to UnsignedTerm.
type UnsignedTerm uint64

// NegativeTerm is a CBOR major type 1 negative integer. The value is kept
// as a big.Int since CBOR negatives extend to -2^64, past int64 range.
type NegativeTerm struct {
	Value *big.Int
}

// BytesTerm is a CBOR byte string (indefinite-length chunks are joined)
type BytesTerm []byte

// TextTerm is a CBOR text string
type TextTerm string

// BoolTerm is a CBOR boolean
type BoolTerm bool

// FloatTerm is a CBOR floating point value of any width
type FloatTerm float64

// NullTerm is CBOR null or undefined
type NullTerm struct{}

// ArrayTerm is a CBOR array with element order preserved
type ArrayTerm []Term

// MapPair is a single key/value entry of a MapTerm
type MapPair struct {
	Key   Term
	Value Term
}

// MapTerm is a CBOR map as an ordered sequence of entries. Entry order is
// the wire order and duplicate keys are kept, which Go maps cannot do.
type MapTerm []MapPair

// TaggedTerm is a CBOR semantic tag wrapping a nested item
type TaggedTerm struct {
	Number  uint64
	Content Term
}

func (UnsignedTerm) isTerm() {}
func (NegativeTerm) isTerm() {}
func (BytesTerm) isTerm()    {}
func (TextTerm) isTerm()     {}
func (BoolTerm) isTerm()     {}
func (FloatTerm) isTerm()    {}
func (NullTerm) isTerm()     {}
func (ArrayTerm) isTerm()    {}
func (MapTerm) isTerm()      {}
func (TaggedTerm) isTerm()   {}

// Uint64 returns the raw unsigned value
func (t UnsignedTerm) Uint64() uint64 {
	return uint64(t)
}

// Bytes returns the raw byte string
func (t BytesTerm) Bytes() []byte {
	return []byte(t)
}

// NewNegativeTerm builds a NegativeTerm from an int64 for convenience
func NewNegativeTerm(value int64) NegativeTerm {
	return NegativeTerm{Value: big.NewInt(value)}
}

// DecodeTerm decodes the first CBOR item from the provided bytes into a
// Term and returns the number of bytes consumed. Trailing bytes after the
// first item are not an error.
func DecodeTerm(data []byte) (Term, int, error) {
	if len(data) == 0 {
		return nil, 0, errors.New("empty CBOR data")
	}
	switch data[0] & CborTypeMask {
	case CborTypeUint:
		var tmpValue uint64
		n, err := Decode(data, &tmpValue)
		if err != nil {
			return nil, 0, err
		}
		return UnsignedTerm(tmpValue), n, nil
	case CborTypeNegInt:
		var tmpValue any
		n, err := Decode(data, &tmpValue)
		if err != nil {
			return nil, 0, err
		}
		switch v := tmpValue.(type) {
		case int64:
			return NegativeTerm{Value: big.NewInt(v)}, n, nil
		case big.Int:
			// The upstream CBOR library falls back to big.Int for
			// negative values below int64 range
			return NegativeTerm{Value: &v}, n, nil
		case *big.Int:
			return NegativeTerm{Value: v}, n, nil
		default:
			return nil, 0, fmt.Errorf(
				"unexpected negative integer representation: %T",
				tmpValue,
			)
		}
	case CborTypeByteString:
		tmpValue := []byte{}
		n, err := Decode(data, &tmpValue)
		if err != nil {
			return nil, 0, err
		}
		return BytesTerm(tmpValue), n, nil
	case CborTypeTextString:
		var tmpValue string
		n, err := Decode(data, &tmpValue)
		if err != nil {
			return nil, 0, err
		}
		return TextTerm(tmpValue), n, nil
	case CborTypeArray:
		return decodeArrayTerm(data)
	case CborTypeMap:
		return decodeMapTerm(data)
	case CborTypeTag:
		// Parse as a raw tag to get the number and nested CBOR data
		tmpTag := RawTag{}
		n, err := Decode(data, &tmpTag)
		if err != nil {
			return nil, 0, err
		}
		content, _, err := DecodeTerm(tmpTag.Content)
		if err != nil {
			return nil, 0, err
		}
		return TaggedTerm{Number: tmpTag.Number, Content: content}, n, nil
	default:
		var tmpValue any
		n, err := Decode(data, &tmpValue)
		if err != nil {
			return nil, 0, err
		}
		switch v := tmpValue.(type) {
		case bool:
			return BoolTerm(v), n, nil
		case nil:
			return NullTerm{}, n, nil
		case float64:
			return FloatTerm(v), n, nil
		case float32:
			return FloatTerm(float64(v)), n, nil
		case _cbor.SimpleValue:
			// Unassigned simple values collapse to unsigned integers
			return UnsignedTerm(uint64(v)), n, nil
		default:
			return nil, 0, fmt.Errorf(
				"unsupported CBOR simple value type: %T",
				tmpValue,
			)
		}
	}
}

func decodeArrayTerm(data []byte) (Term, int, error) {
	var tmpItems []RawMessage
	n, err := Decode(data, &tmpItems)
	if err != nil {
		return nil, 0, err
	}
	tmpArray := make(ArrayTerm, 0, len(tmpItems))
	for _, tmpItem := range tmpItems {
		itemTerm, _, err := DecodeTerm(tmpItem)
		if err != nil {
			return nil, 0, err
		}
		tmpArray = append(tmpArray, itemTerm)
	}
	return tmpArray, n, nil
}

// decodeMapTerm scans the map header manually and decodes the entries
// sequentially. Decoding through a Go map would lose the wire entry order
// and drop duplicate keys, both of which the Term model keeps.
func decodeMapTerm(data []byte) (Term, int, error) {
	count, indefinite, offset, err := decodeMapHeader(data)
	if err != nil {
		return nil, 0, err
	}
	tmpMap := MapTerm{}
	decodeEntry := func() error {
		keyTerm, n, err := DecodeTerm(data[offset:])
		if err != nil {
			return err
		}
		offset += n
		if offset >= len(data) {
			return errors.New("unexpected end of CBOR map data")
		}
		valueTerm, n, err := DecodeTerm(data[offset:])
		if err != nil {
			return err
		}
		offset += n
		tmpMap = append(tmpMap, MapPair{Key: keyTerm, Value: valueTerm})
		return nil
	}
	if indefinite {
		for {
			if offset >= len(data) {
				return nil, 0, errors.New("unexpected end of CBOR map data")
			}
			if data[offset] == cborBreak {
				offset++
				break
			}
			if err := decodeEntry(); err != nil {
				return nil, 0, err
			}
		}
	} else {
		for i := 0; i < count; i++ {
			if offset >= len(data) {
				return nil, 0, errors.New("unexpected end of CBOR map data")
			}
			if err := decodeEntry(); err != nil {
				return nil, 0, err
			}
		}
	}
	return tmpMap, offset, nil
}

// decodeMapHeader parses a CBOR map header and returns the entry count
// (or the indefinite-length flag) and the header length in bytes
func decodeMapHeader(data []byte) (int, bool, int, error) {
	firstByte := data[0]
	if firstByte&CborTypeMask != CborTypeMap {
		return 0, false, 0, fmt.Errorf(
			"expected map (0x%x), got 0x%x",
			CborTypeMap,
			firstByte&CborTypeMask,
		)
	}
	additionalInfo := firstByte & 0x1f
	switch {
	case additionalInfo <= CborMaxUintSimple:
		return int(additionalInfo), false, 1, nil
	case additionalInfo == 24:
		if len(data) < 2 {
			return 0, false, 0, errors.New("unexpected end of CBOR map header")
		}
		return int(data[1]), false, 2, nil
	case additionalInfo == 25:
		if len(data) < 3 {
			return 0, false, 0, errors.New("unexpected end of CBOR map header")
		}
		return int(binary.BigEndian.Uint16(data[1:3])), false, 3, nil
	case additionalInfo == 26:
		if len(data) < 5 {
			return 0, false, 0, errors.New("unexpected end of CBOR map header")
		}
		return int(binary.BigEndian.Uint32(data[1:5])), false, 5, nil
	case additionalInfo == 27:
		if len(data) < 9 {
			return 0, false, 0, errors.New("unexpected end of CBOR map header")
		}
		tmpCount := binary.BigEndian.Uint64(data[1:9])
		if tmpCount > uint64(len(data)) {
			// A definite-length map always needs at least one byte per entry
			return 0, false, 0, errors.New("CBOR map length exceeds data size")
		}
		return int(tmpCount), false, 9, nil
	case additionalInfo == 31:
		return 0, true, 1, nil
	default:
		return 0, false, 0, fmt.Errorf(
			"invalid CBOR map header byte: 0x%x",
			firstByte,
		)
	}
}
