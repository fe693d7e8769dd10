package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/mem"
	protobuf "google.golang.org/protobuf/proto"
)

// CodecName is the default gRPC content-subtype (application/grpc and
// application/grpc+proto).
const CodecName = "proto"

// Codec encodes the service messages in the protobuf binary format and hands
// generated messages (health checks, well-known types) to the protobuf
// runtime, so it can stand in for the stock proto codec.
type Codec struct{}

func (Codec) Marshal(v any) (mem.BufferSlice, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (Codec) Unmarshal(data mem.BufferSlice, v any) error {
	buf := data.MaterializeToBuffer(mem.DefaultBufferPool())
	defer buf.Free()
	return Unmarshal(buf.ReadOnlyData(), v)
}

func (Codec) Name() string {
	return CodecName
}

// Marshal encodes v, which must be a service message or a protobuf message.
func Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case protobuf.Message:
		return protobuf.Marshal(m)
	}
	return nil, fmt.Errorf("failed to marshal, message is %T, want a service or protobuf message", v)
}

// Unmarshal decodes b into v, which must be a service message or a protobuf
// message.
func Unmarshal(b []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		return m.unmarshalWire(b)
	case protobuf.Message:
		return protobuf.Unmarshal(b, m)
	}
	return fmt.Errorf("failed to unmarshal, message is %T, want a service or protobuf message", v)
}

func init() {
	encoding.RegisterCodecV2(Codec{})
}
