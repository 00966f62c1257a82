package utils

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that stores T as JSON.
// T must marshal deterministically (structs, not maps).
func JSONValue[T any](valueType string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{valueType: valueType}
}

type jsonValueCodec[T any] struct {
	valueType string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	if err := json.Unmarshal(bz, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", c.valueType, err)
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error) {
	return c.Decode(bz)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.valueType
}
