// Package jsoncodec lets connect carry plain Go structs as JSON.
//
// The connect default "json" codec only understands protobuf messages; the
// RPC messages in this repository are ordinary structs, so handlers and
// clients register Codec under the same name to replace it.
package jsoncodec

import (
	"encoding/json"
	"fmt"
)

// Name is the codec name negotiated through the Content-Type header.
const Name = "json"

// Codec implements connect.Codec with encoding/json.
type Codec struct{}

func (Codec) Name() string { return Name }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
