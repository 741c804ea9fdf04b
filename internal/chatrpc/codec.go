// Package chatrpc declares the wire contract between WhatsUT clients and
// the server: message types, the ChatService and CallbackService
// descriptors, and typed client stubs. Messages are plain Go structs carried
// by a JSON codec registered with grpc under the name "json". Well-known
// protobuf types such as Empty go through protojson on the same codec.
package chatrpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content subtype every call uses (application/grpc+json).
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CallOption selects the JSON codec for a call. Stubs in this package add
// it automatically.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
