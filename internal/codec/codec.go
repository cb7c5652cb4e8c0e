// Package codec encodes and decodes the binary messages exchanged with the
// Chroma API.
//
// A message is any type that can append its wire form to a buffer and
// populate itself from one (see Message). The concrete message types live in
// internal/proto; this package only fixes the contract and the media type.
//
// Both operations are pure: no network or storage I/O happens here, and a
// failure to decode is always reported as ErrMalformedMessage.
package codec

import (
	"errors"
	"fmt"
	"reflect"
)

// MediaType is the only content type used for request and response bodies,
// announced in both Content-Type and Accept.
const MediaType = "application/protobuf"

// ErrMalformedMessage is returned when bytes cannot be decoded into the
// requested message type. It is never retried.
var ErrMalformedMessage = errors.New("malformed message")

// Message is implemented by every wire message.
type Message interface {
	// AppendWire appends the wire encoding of the message to b.
	AppendWire(b []byte) []byte
	// ConsumeWire resets nothing and merges the fields found in b.
	ConsumeWire(b []byte) error
}

// Pointer constrains a type parameter to a pointer to T implementing Message,
// so that Decode can allocate the value itself.
type Pointer[T any] interface {
	*T
	Message
}

// Encode returns the wire encoding of m. A nil message, including a typed
// nil pointer such as (*proto.Album)(nil), encodes to nil.
func Encode(m Message) []byte {
	if isNil(m) {
		return nil
	}
	return m.AppendWire(nil)
}

func isNil(m Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Decode allocates a new T and populates it from b.
//
//	album, err := codec.Decode[proto.Album](body)
func Decode[T any, P Pointer[T]](b []byte) (P, error) {
	m := P(new(T))
	if err := DecodeInto(b, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeInto populates an existing message from b.
func DecodeInto(b []byte, m Message) error {
	if err := m.ConsumeWire(b); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return nil
}
