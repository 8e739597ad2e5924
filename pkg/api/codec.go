package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CodecName is registered in place of connect's protobuf JSON codec, so
// requests travel as application/json (Connect protocol) and
// application/grpc+json (gRPC protocols).
const CodecName = "json"

// Codec is a connect.Codec that marshals plain Go structs with encoding/json.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal rejects unknown fields so typos in requests surface as errors.
// An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid %T: %w", v, err)
	}
	return nil
}
