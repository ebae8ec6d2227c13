// Package serialization writes the little-endian, field-by-field wire
// encoding shared by header hashing and header transmission.
package serialization

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

// WriteElement writes the little-endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return binary.Write(w, binary.LittleEndian, e)
	case uint32:
		return binary.Write(w, binary.LittleEndian, e)
	case uint16:
		return binary.Write(w, binary.LittleEndian, e)
	case externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return err
	case *externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return err
	case externalapi.Cycle:
		for _, v := range e {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
	}
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := WriteElement(w, element); err != nil {
			return err
		}
	}
	return nil
}
