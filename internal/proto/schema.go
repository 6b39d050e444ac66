// Package proto holds the wire contract of the LearnHub preference service:
// request/response messages, the gRPC service descriptor, a typed client and
// the server interface.
//
// Messages are plain Go structs. The protobuf schema is assembled from their
// field tags at init, and values travel as dynamicpb messages through the
// default gRPC proto codec, so any protobuf peer can talk to the service.
package proto

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	packageName = "learnhub"
	serviceName = "PreferenceService"
	fileName    = "learnhub/preference.proto"
)

// methods lists the unary methods; each takes <Name>Request and returns
// <Name>Response.
var methods = []string{
	"RegisterUser", "GetSalt", "Login", "RefreshToken", "Ping", "GetPreference", "UpsertPreference",
}

var messageTypes = []reflect.Type{
	reflect.TypeFor[RegisterUserRequest](), reflect.TypeFor[RegisterUserResponse](),
	reflect.TypeFor[GetSaltRequest](), reflect.TypeFor[GetSaltResponse](),
	reflect.TypeFor[LoginRequest](), reflect.TypeFor[LoginResponse](),
	reflect.TypeFor[RefreshTokenRequest](), reflect.TypeFor[RefreshTokenResponse](),
	reflect.TypeFor[PingRequest](), reflect.TypeFor[PingResponse](),
	reflect.TypeFor[GetPreferenceRequest](), reflect.TypeFor[GetPreferenceResponse](),
	reflect.TypeFor[UpsertPreferenceRequest](), reflect.TypeFor[UpsertPreferenceResponse](),
}

// File is the descriptor of learnhub/preference.proto.
var File protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(fileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("build %s: %v", fileName, err))
	}
	File = fd
}

type fieldTag struct {
	number int32
	name   string
}

func parseTag(sf reflect.StructField) (fieldTag, bool) {
	tag, ok := sf.Tag.Lookup("protobuf")
	if !ok {
		return fieldTag{}, false
	}
	var ft fieldTag
	for i, part := range strings.Split(tag, ",") {
		if i == 1 {
			n, err := strconv.ParseInt(part, 10, 32)
			if err != nil {
				panic(fmt.Sprintf("%s: bad field number %q", sf.Name, part))
			}
			ft.number = int32(n)
		}
		if name, ok := strings.CutPrefix(part, "name="); ok {
			ft.name = name
		}
	}
	return ft, true
}

func scalarType(t reflect.Type) descriptorpb.FieldDescriptorProto_Type {
	switch {
	case t.Kind() == reflect.String:
		return descriptorpb.FieldDescriptorProto_TYPE_STRING
	case t.Kind() == reflect.Bool:
		return descriptorpb.FieldDescriptorProto_TYPE_BOOL
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return descriptorpb.FieldDescriptorProto_TYPE_BYTES
	default:
		panic(fmt.Sprintf("unsupported wire field type %s", t))
	}
}

func messageProto(t reflect.Type) *descriptorpb.DescriptorProto {
	m := &descriptorpb.DescriptorProto{Name: proto.String(t.Name())}
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, ok := parseTag(sf)
		if !ok {
			continue
		}
		m.Field = append(m.Field, &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(tag.name),
			Number: proto.Int32(tag.number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   scalarType(sf.Type).Enum(),
		})
	}
	return m
}

func fileProto() *descriptorpb.FileDescriptorProto {
	f := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(fileName),
		Package: proto.String(packageName),
		Syntax:  proto.String("proto3"),
	}
	for _, t := range messageTypes {
		f.MessageType = append(f.MessageType, messageProto(t))
	}

	svc := &descriptorpb.ServiceDescriptorProto{Name: proto.String(serviceName)}
	for _, name := range methods {
		svc.Method = append(svc.Method, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String("." + packageName + "." + name + "Request"),
			OutputType: proto.String("." + packageName + "." + name + "Response"),
		})
	}
	f.Service = []*descriptorpb.ServiceDescriptorProto{svc}
	return f
}

// newWire returns an empty wire message for the struct v points to.
func newWire(v any) *dynamicpb.Message {
	t := reflect.TypeOf(v).Elem()
	md := File.Messages().ByName(protoreflect.Name(t.Name()))
	if md == nil {
		panic(fmt.Sprintf("%s is not a wire message", t))
	}
	return dynamicpb.NewMessage(md)
}

// toWire copies the struct v points to into a wire message. Zero fields
// stay unset.
func toWire(v any) *dynamicpb.Message {
	msg := newWire(v)
	fields := msg.Descriptor().Fields()
	rv := reflect.ValueOf(v).Elem()

	for i := range rv.NumField() {
		tag, ok := parseTag(rv.Type().Field(i))
		fv := rv.Field(i)
		if !ok || fv.IsZero() {
			continue
		}
		fd := fields.ByName(protoreflect.Name(tag.name))
		switch fd.Kind() {
		case protoreflect.StringKind:
			msg.Set(fd, protoreflect.ValueOfString(fv.String()))
		case protoreflect.BoolKind:
			msg.Set(fd, protoreflect.ValueOfBool(fv.Bool()))
		case protoreflect.BytesKind:
			msg.Set(fd, protoreflect.ValueOfBytes(fv.Bytes()))
		}
	}
	return msg
}

// fromWire fills the struct v points to from msg.
func fromWire(msg protoreflect.Message, v any) {
	fields := msg.Descriptor().Fields()
	rv := reflect.ValueOf(v).Elem()

	for i := range rv.NumField() {
		tag, ok := parseTag(rv.Type().Field(i))
		if !ok {
			continue
		}
		fd := fields.ByName(protoreflect.Name(tag.name))
		if !msg.Has(fd) {
			continue
		}
		val, fv := msg.Get(fd), rv.Field(i)
		switch fd.Kind() {
		case protoreflect.StringKind:
			fv.SetString(val.String())
		case protoreflect.BoolKind:
			fv.SetBool(val.Bool())
		case protoreflect.BytesKind:
			fv.SetBytes(append([]byte(nil), val.Bytes()...))
		}
	}
}
