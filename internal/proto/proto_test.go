package proto

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/mem"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protowire"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func stringField(name string, num int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   protobuf.String(name),
		Number: protobuf.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

// descriptors mirrors part of useraccount.proto so the protobuf runtime can
// read and write the same bytes as the service messages.
func descriptors(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    protobuf.String("useraccount_test.proto"),
		Package: protobuf.String("useraccount"),
		Syntax:  protobuf.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: protobuf.String("GetUserResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("email", 2),
					stringField("name", 3),
					stringField("phone_number", 4),
					stringField("username", 5),
				},
			},
			{
				Name: protobuf.String("GetAllResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{{
					Name:     protobuf.String("users"),
					Number:   protobuf.Int32(1),
					Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
					Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
					TypeName: protobuf.String(".useraccount.GetUserResponse"),
				}},
			},
			{
				Name: protobuf.String("ChangePasswordRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("old_password", 1),
					stringField("new_password", 2),
					stringField("confirm_new_password", 3),
				},
			},
		},
	}
	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)
	return fd
}

func TestCodec_ReplacesDefault(t *testing.T) {
	c := encoding.GetCodecV2(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "proto", c.Name())
	assert.IsType(t, Codec{}, c)
}

func TestCodec_RoundTrip(t *testing.T) {
	in := &CreateUserRequest{Email: "a@b.com", Name: "Ann", PhoneNumber: "+15551234567", Password: "Abcdef1!"}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)

	var out CreateUserRequest
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}

func TestCodec_GeneratedMessages(t *testing.T) {
	data, err := Codec{}.Marshal(&healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING})
	require.NoError(t, err)

	var out healthpb.HealthCheckResponse
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, out.GetStatus())
}

func TestMarshal_RejectsForeignTypes(t *testing.T) {
	_, err := Marshal(struct{ Email string }{"a@b.com"})
	assert.ErrorContains(t, err, "failed to marshal")

	var s string
	assert.ErrorContains(t, Unmarshal(nil, &s), "failed to unmarshal")

	_, err = Codec{}.Marshal(42)
	assert.Error(t, err)
	assert.Error(t, Codec{}.Unmarshal(mem.BufferSlice{mem.SliceBuffer([]byte{0x0a, 0x01, 'x'})}, 42))
}

func TestWire_ReadableByProtobufRuntime(t *testing.T) {
	fd := descriptors(t)
	allMD := fd.Messages().ByName("GetAllResponse")
	userMD := fd.Messages().ByName("GetUserResponse")

	b, err := Marshal(&GetAllResponse{Users: []*GetUserResponse{
		{Id: "1", Email: "a@b.com", Name: "Ann", PhoneNumber: "+12", Username: "a@b.com"},
		{Id: "2", Email: "c@d.com"},
	}})
	require.NoError(t, err)

	m := dynamicpb.NewMessage(allMD)
	require.NoError(t, protobuf.Unmarshal(b, m))

	users := m.Get(allMD.Fields().ByName("users")).List()
	require.Equal(t, 2, users.Len())
	first := users.Get(0).Message()
	assert.Equal(t, "+12", first.Get(userMD.Fields().ByName("phone_number")).String())
	assert.Equal(t, "a@b.com", first.Get(userMD.Fields().ByName("username")).String())
	second := users.Get(1).Message()
	assert.Equal(t, "c@d.com", second.Get(userMD.Fields().ByName("email")).String())
	assert.False(t, second.Has(userMD.Fields().ByName("name")))
}

func TestWire_DecodesProtobufRuntimeOutput(t *testing.T) {
	md := descriptors(t).Messages().ByName("ChangePasswordRequest")
	m := dynamicpb.NewMessage(md)
	m.Set(md.Fields().ByName("old_password"), protoreflect.ValueOfString("old"))
	m.Set(md.Fields().ByName("new_password"), protoreflect.ValueOfString("New1!pass"))
	m.Set(md.Fields().ByName("confirm_new_password"), protoreflect.ValueOfString("New1!pass"))

	b, err := protobuf.Marshal(m)
	require.NoError(t, err)

	var got ChangePasswordRequest
	require.NoError(t, Unmarshal(b, &got))
	if diff := cmp.Diff(ChangePasswordRequest{OldPassword: "old", NewPassword: "New1!pass", ConfirmNewPassword: "New1!pass"}, got); diff != "" {
		t.Errorf("decoded request mismatch (-want +got):\n%s", diff)
	}
}

func TestWire_WellKnownTypes(t *testing.T) {
	b, err := protobuf.Marshal(wrapperspb.String("a@b.com"))
	require.NoError(t, err)
	var req GetUserRequest
	require.NoError(t, Unmarshal(b, &req))
	assert.Equal(t, "a@b.com", req.GetEmail())

	b, err = Marshal(&PingResponse{Status: "OK"})
	require.NoError(t, err)
	var s wrapperspb.StringValue
	require.NoError(t, protobuf.Unmarshal(b, &s))
	assert.Equal(t, "OK", s.GetValue())

	b, err = protobuf.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.NoError(t, Unmarshal(b, &GetAllRequest{}))
	assert.NoError(t, Unmarshal(b, &PingRequest{}))
}

func TestWire_EmptyStringsAreOmitted(t *testing.T) {
	b, err := Marshal(&LoginResponse{Username: "a@b.com"})
	require.NoError(t, err)

	want := protowire.AppendTag(nil, 2, protowire.BytesType)
	want = protowire.AppendString(want, "a@b.com")
	assert.Equal(t, want, b)

	b, err = Marshal(&GetAllResponse{})
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestWire_SkipsUnknownFieldsAndWrongTypes(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 150)
	b = protowire.AppendTag(b, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "secret")
	b = protowire.AppendTag(b, 12, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{1, 2, 3})

	var req LoginRequest
	require.NoError(t, Unmarshal(b, &req))
	assert.Equal(t, LoginRequest{Password: "secret"}, req)
}

func TestWire_ResetsTarget(t *testing.T) {
	b, err := Marshal(&UpdateUserRequest{Name: "Bob"})
	require.NoError(t, err)

	req := UpdateUserRequest{Name: "Ann", PhoneNumber: "+12"}
	require.NoError(t, Unmarshal(b, &req))
	assert.Equal(t, UpdateUserRequest{Name: "Bob"}, req)
}

func TestWire_Malformed(t *testing.T) {
	full, err := Marshal(&GetAdminResponse{Admins: []*GetUserResponse{{Email: "a@b.com"}}})
	require.NoError(t, err)

	var resp GetAdminResponse
	assert.Error(t, Unmarshal(full[:len(full)-1], &resp))
	assert.Error(t, Unmarshal([]byte{0x0a, 0x05, 'a'}, &DeleteUserRequest{}))
	assert.Error(t, Unmarshal([]byte{0x80}, &PingRequest{}))
}

func TestGetters_NilSafe(t *testing.T) {
	var (
		login *LoginResponse
		user  *GetUserResponse
		all   *GetAllResponse
		adm   *GetAdminResponse
		cp    *ChangePasswordRequest
	)
	assert.Empty(t, login.GetToken())
	assert.Empty(t, user.GetEmail())
	assert.Nil(t, all.GetUsers())
	assert.Nil(t, adm.GetAdmins())
	assert.Empty(t, cp.GetConfirmNewPassword())
}

func TestServiceDesc_Methods(t *testing.T) {
	assert.Equal(t, "useraccount.UserAccountService", UserAccountService_ServiceDesc.ServiceName)
	require.Len(t, UserAccountService_ServiceDesc.Methods, 10)

	for _, m := range UserAccountService_ServiceDesc.Methods {
		assert.NotNil(t, m.Handler, m.MethodName)
		assert.False(t, strings.Contains(m.MethodName, "/"))
	}
}

type unimplemented struct {
	UnimplementedUserAccountServiceServer
}

func TestUnaryHandler_DecodesAndDispatches(t *testing.T) {
	var h = UserAccountService_ServiceDesc.Methods[0].Handler

	wire, err := Marshal(&CreateUserRequest{Email: "a@b.com"})
	require.NoError(t, err)
	dec := func(v any) error {
		return Unmarshal(wire, v)
	}

	_, err = h(unimplemented{}, context.Background(), dec, nil)
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	var seen any
	var seenMethod string
	_, err = h(unimplemented{}, context.Background(), dec,
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			seen, seenMethod = req, info.FullMethod
			return handler(ctx, req)
		})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	assert.Equal(t, &CreateUserRequest{Email: "a@b.com"}, seen)
	assert.Equal(t, UserAccountService_RegisterUser_FullMethodName, seenMethod)
}
