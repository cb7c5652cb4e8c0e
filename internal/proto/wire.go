// Package proto holds the messages of the Chroma API.
//
// The messages are plain structs: optional fields are pointers and are only
// written when set, repeated fields are slices. Encoding follows the protobuf
// wire format and is implemented with protowire, so the bytes are compatible
// with the schema the server is generated from. Unknown fields are skipped
// when decoding.
package proto

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

var errInvalidUTF8 = errors.New("string field contains invalid UTF-8")

type wireMessage interface {
	AppendWire(b []byte) []byte
	ConsumeWire(b []byte) error
}

// fieldFunc consumes the value of one field and reports how many bytes it used.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func decodeFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[n:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func expectType(got, want protowire.Type) error {
	if got != want {
		return fmt.Errorf("wire type %d, want %d", got, want)
	}
	return nil
}

func consumeBytesValue(typ protowire.Type, b []byte) ([]byte, int, error) {
	if err := expectType(typ, protowire.BytesType); err != nil {
		return nil, 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeVarintValue(typ protowire.Type, b []byte) (uint64, int, error) {
	if err := expectType(typ, protowire.VarintType); err != nil {
		return 0, 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumeStringValue is consumeBytesValue for proto3 string fields, which
// must hold valid UTF-8.
func consumeStringValue(typ protowire.Type, b []byte) (string, int, error) {
	v, n, err := consumeBytesValue(typ, b)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(v) {
		return "", 0, errInvalidUTF8
	}
	return string(v), n, nil
}

func stringField(typ protowire.Type, b []byte, dst **string) (int, error) {
	s, n, err := consumeStringValue(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = &s
	return n, nil
}

func repeatedStringField(typ protowire.Type, b []byte, dst *[]string) (int, error) {
	s, n, err := consumeStringValue(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, s)
	return n, nil
}

func bytesField(typ protowire.Type, b []byte, dst *[]byte) (int, error) {
	v, n, err := consumeBytesValue(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = append([]byte(nil), v...)
	return n, nil
}

func int64Field(typ protowire.Type, b []byte, dst **int64) (int, error) {
	v, n, err := consumeVarintValue(typ, b)
	if err != nil {
		return 0, err
	}
	i := int64(v)
	*dst = &i
	return n, nil
}

func int32Field(typ protowire.Type, b []byte, dst **int32) (int, error) {
	v, n, err := consumeVarintValue(typ, b)
	if err != nil {
		return 0, err
	}
	i := int32(v)
	*dst = &i
	return n, nil
}

func boolField(typ protowire.Type, b []byte, dst **bool) (int, error) {
	v, n, err := consumeVarintValue(typ, b)
	if err != nil {
		return 0, err
	}
	x := protowire.DecodeBool(v)
	*dst = &x
	return n, nil
}

func messageField[T any, P interface {
	*T
	wireMessage
}](typ protowire.Type, b []byte, dst *P) (int, error) {
	v, n, err := consumeBytesValue(typ, b)
	if err != nil {
		return 0, err
	}
	if *dst == nil {
		*dst = P(new(T))
	}
	if err := (*dst).ConsumeWire(v); err != nil {
		return 0, err
	}
	return n, nil
}

func repeatedMessageField[T any, P interface {
	*T
	wireMessage
}](typ protowire.Type, b []byte, dst *[]P) (int, error) {
	v, n, err := consumeBytesValue(typ, b)
	if err != nil {
		return 0, err
	}
	m := P(new(T))
	if err := m.ConsumeWire(v); err != nil {
		return 0, err
	}
	*dst = append(*dst, m)
	return n, nil
}

func appendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendStrings(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

func appendBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendWire(nil))
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }
