// Package proto holds the wire contract of the FaceAuthService: message
// types, the gRPC service descriptor and the JSON codec they travel with.
//
// The codec is plain encoding/json, not protojson. Timestamp fields
// therefore travel as their struct fields rather than RFC 3339 strings:
//
//	"registration_date": {"seconds": 1709287200, "nanos": 500}
//
// Zero seconds or nanos are omitted, and an absent field decodes to nil.
// Non-Go clients must speak this shape.
package proto

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype ("application/grpc+json").
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal %T: %w", v, err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string { return CodecName }
