package chatmodel

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

var (
	ErrFailedUnmarshalInput = errors.New("failed to unmarshal input: check the schema and try again")
)

// ContentProvider is implemented by request and response types
// that can render themselves as chat content.
type ContentProvider interface {
	GetContent() string
}

// InputParser allows a request type to own its input parsing,
// instead of the default JSON unmarshaling.
// If the input cannot be parsed, it should return ErrFailedUnmarshalInput.
type InputParser interface {
	ParseInput(text string) error
}

type Stringer interface {
	String() string
}

func Stringify(s any) string {
	if v, ok := s.(Stringer); ok {
		return v.String()
	}
	if v, ok := s.(ContentProvider); ok {
		return v.GetContent()
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

func ToBytes(s any) []byte {
	if v, ok := s.(Stringer); ok {
		return []byte(v.String())
	}
	if v, ok := s.(ContentProvider); ok {
		return []byte(v.GetContent())
	}
	bs, _ := json.Marshal(s)
	return bs
}
