package deque

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements json.Marshaler.
// Serializes the deque as a JSON array, front to back.
func (d *deque[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(d.ToSlice())
	if err != nil {
		return nil, fmt.Errorf("marshal deque: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
// A plain deque needs no comparator to reconstruct, unlike a sorted or
// hashed collection, so it can round-trip directly on the concrete type.
func (d *deque[T]) UnmarshalJSON(data []byte) error {
	var slice []T
	if err := json.Unmarshal(data, &slice); err != nil {
		return fmt.Errorf("unmarshal deque: %w", err)
	}
	d.s = fromSliceSpine[T](slice)
	return nil
}

// GobEncode implements gob.GobEncoder.
func (d *deque[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(d.ToSlice()); err != nil {
		return nil, fmt.Errorf("gob encode deque: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (d *deque[T]) GobDecode(data []byte) error {
	var slice []T
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&slice); err != nil {
		return fmt.Errorf("gob decode deque: %w", err)
	}
	d.s = fromSliceSpine[T](slice)
	return nil
}
