// Package grpc exposes the gateway operations over gRPC.
//
// No protobuf code generation is involved: messages are the JSON-tagged
// types of the models package, carried by a JSON codec, and the service
// descriptor is written by hand.
package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

const codecName = "json"

// JSONCodec implements grpc/encoding.Codec with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

func (JSONCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(JSONCodec{})
}
