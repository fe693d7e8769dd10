package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every message of the service. Field numbers
// follow useraccount.proto.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// skipField tells consumeFields to step over a field it does not know.
const skipField = -1

type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// consumeFields walks the fields of b. Unknown fields and known fields with
// an unexpected wire type are skipped.
func consumeFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if m == skipField {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		b = b[m:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

func consumeString(dst *string, typ protowire.Type, b []byte) (int, error) {
	if typ != protowire.BytesType {
		return skipField, nil
	}
	s, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = s
	return n, nil
}

func consumeUser(dst *[]*GetUserResponse, typ protowire.Type, b []byte) (int, error) {
	if typ != protowire.BytesType {
		return skipField, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	u := new(GetUserResponse)
	if err := u.unmarshalWire(v); err != nil {
		return 0, err
	}
	*dst = append(*dst, u)
	return n, nil
}

func (x *CreateUserRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Email)
	b = appendString(b, 2, x.Name)
	b = appendString(b, 3, x.PhoneNumber)
	return appendString(b, 4, x.Password)
}

func (x *CreateUserRequest) unmarshalWire(b []byte) error {
	*x = CreateUserRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Email, typ, v)
		case 2:
			return consumeString(&x.Name, typ, v)
		case 3:
			return consumeString(&x.PhoneNumber, typ, v)
		case 4:
			return consumeString(&x.Password, typ, v)
		}
		return skipField, nil
	})
}

func (x *CreateUserResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Message)
}

func (x *CreateUserResponse) unmarshalWire(b []byte) error {
	*x = CreateUserResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Message, typ, v)
		}
		return skipField, nil
	})
}

func (x *LoginRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Email)
	return appendString(b, 2, x.Password)
}

func (x *LoginRequest) unmarshalWire(b []byte) error {
	*x = LoginRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Email, typ, v)
		case 2:
			return consumeString(&x.Password, typ, v)
		}
		return skipField, nil
	})
}

func (x *LoginResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Token)
	return appendString(b, 2, x.Username)
}

func (x *LoginResponse) unmarshalWire(b []byte) error {
	*x = LoginResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Token, typ, v)
		case 2:
			return consumeString(&x.Username, typ, v)
		}
		return skipField, nil
	})
}

func (x *GetUserRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Email)
}

func (x *GetUserRequest) unmarshalWire(b []byte) error {
	*x = GetUserRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Email, typ, v)
		}
		return skipField, nil
	})
}

func (x *GetUserResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Id)
	b = appendString(b, 2, x.Email)
	b = appendString(b, 3, x.Name)
	b = appendString(b, 4, x.PhoneNumber)
	return appendString(b, 5, x.Username)
}

func (x *GetUserResponse) unmarshalWire(b []byte) error {
	*x = GetUserResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Id, typ, v)
		case 2:
			return consumeString(&x.Email, typ, v)
		case 3:
			return consumeString(&x.Name, typ, v)
		case 4:
			return consumeString(&x.PhoneNumber, typ, v)
		case 5:
			return consumeString(&x.Username, typ, v)
		}
		return skipField, nil
	})
}

func (x *UpdateUserRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Name)
	return appendString(b, 2, x.PhoneNumber)
}

func (x *UpdateUserRequest) unmarshalWire(b []byte) error {
	*x = UpdateUserRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Name, typ, v)
		case 2:
			return consumeString(&x.PhoneNumber, typ, v)
		}
		return skipField, nil
	})
}

func (x *UpdateUserResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Id)
	b = appendString(b, 2, x.Email)
	b = appendString(b, 3, x.Name)
	b = appendString(b, 4, x.PhoneNumber)
	return appendString(b, 5, x.Username)
}

func (x *UpdateUserResponse) unmarshalWire(b []byte) error {
	*x = UpdateUserResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.Id, typ, v)
		case 2:
			return consumeString(&x.Email, typ, v)
		case 3:
			return consumeString(&x.Name, typ, v)
		case 4:
			return consumeString(&x.PhoneNumber, typ, v)
		case 5:
			return consumeString(&x.Username, typ, v)
		}
		return skipField, nil
	})
}

func (x *ChangePasswordRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.OldPassword)
	b = appendString(b, 2, x.NewPassword)
	return appendString(b, 3, x.ConfirmNewPassword)
}

func (x *ChangePasswordRequest) unmarshalWire(b []byte) error {
	*x = ChangePasswordRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(&x.OldPassword, typ, v)
		case 2:
			return consumeString(&x.NewPassword, typ, v)
		case 3:
			return consumeString(&x.ConfirmNewPassword, typ, v)
		}
		return skipField, nil
	})
}

func (x *ChangePasswordResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Response)
}

func (x *ChangePasswordResponse) unmarshalWire(b []byte) error {
	*x = ChangePasswordResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Response, typ, v)
		}
		return skipField, nil
	})
}

func (x *DeleteUserRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Username)
}

func (x *DeleteUserRequest) unmarshalWire(b []byte) error {
	*x = DeleteUserRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Username, typ, v)
		}
		return skipField, nil
	})
}

func (x *DeleteUserResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Response)
}

func (x *DeleteUserResponse) unmarshalWire(b []byte) error {
	*x = DeleteUserResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Response, typ, v)
		}
		return skipField, nil
	})
}

func (x *AssignRoleRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Email)
}

func (x *AssignRoleRequest) unmarshalWire(b []byte) error {
	*x = AssignRoleRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Email, typ, v)
		}
		return skipField, nil
	})
}

func (x *AssignRoleResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Response)
}

func (x *AssignRoleResponse) unmarshalWire(b []byte) error {
	*x = AssignRoleResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Response, typ, v)
		}
		return skipField, nil
	})
}

func (x *GetAllRequest) appendWire(b []byte) []byte { return b }

func (x *GetAllRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return skipField, nil
	})
}

func (x *GetAllResponse) appendWire(b []byte) []byte {
	for _, u := range x.Users {
		if u == nil {
			u = &GetUserResponse{}
		}
		b = appendMessage(b, 1, u)
	}
	return b
}

func (x *GetAllResponse) unmarshalWire(b []byte) error {
	*x = GetAllResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeUser(&x.Users, typ, v)
		}
		return skipField, nil
	})
}

func (x *GetAdminResponse) appendWire(b []byte) []byte {
	for _, u := range x.Admins {
		if u == nil {
			u = &GetUserResponse{}
		}
		b = appendMessage(b, 1, u)
	}
	return b
}

func (x *GetAdminResponse) unmarshalWire(b []byte) error {
	*x = GetAdminResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeUser(&x.Admins, typ, v)
		}
		return skipField, nil
	})
}

func (x *PingRequest) appendWire(b []byte) []byte { return b }

func (x *PingRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return skipField, nil
	})
}

func (x *PingResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, x.Status)
}

func (x *PingResponse) unmarshalWire(b []byte) error {
	*x = PingResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 {
			return consumeString(&x.Status, typ, v)
		}
		return skipField, nil
	})
}
