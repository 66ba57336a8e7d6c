// Package proto describes the userdirectory.UserDirectory gRPC service.
//
// Messages are google.protobuf.Struct values; the field names each method
// reads and writes are listed in fields.go.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "userdirectory.UserDirectory"

// Full method names.
const (
	UserDirectory_Register_FullMethodName       = "/" + ServiceName + "/Register"
	UserDirectory_Login_FullMethodName          = "/" + ServiceName + "/Login"
	UserDirectory_GetUser_FullMethodName        = "/" + ServiceName + "/GetUser"
	UserDirectory_ListUsers_FullMethodName      = "/" + ServiceName + "/ListUsers"
	UserDirectory_ChangePassword_FullMethodName = "/" + ServiceName + "/ChangePassword"
	UserDirectory_GetBanStatus_FullMethodName   = "/" + ServiceName + "/GetBanStatus"
	UserDirectory_Ping_FullMethodName           = "/" + ServiceName + "/Ping"
)

type UserDirectoryServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListUsers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangePassword(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBanStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedUserDirectoryServer can be embedded to have forward compatible implementations.
type UnimplementedUserDirectoryServer struct{}

func (UnimplementedUserDirectoryServer) Register(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedUserDirectoryServer) Login(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedUserDirectoryServer) GetUser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedUserDirectoryServer) ListUsers(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedUserDirectoryServer) ChangePassword(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePassword not implemented")
}
func (UnimplementedUserDirectoryServer) GetBanStatus(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBanStatus not implemented")
}
func (UnimplementedUserDirectoryServer) Ping(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterUserDirectoryServer(s grpc.ServiceRegistrar, srv UserDirectoryServer) {
	s.RegisterService(&UserDirectory_ServiceDesc, srv)
}

type unaryMethod func(UserDirectoryServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UserDirectoryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UserDirectoryServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// UserDirectory_ServiceDesc is the grpc.ServiceDesc for the UserDirectory service.
var UserDirectory_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(UserDirectory_Register_FullMethodName, UserDirectoryServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(UserDirectory_Login_FullMethodName, UserDirectoryServer.Login)},
		{MethodName: "GetUser", Handler: unaryHandler(UserDirectory_GetUser_FullMethodName, UserDirectoryServer.GetUser)},
		{MethodName: "ListUsers", Handler: unaryHandler(UserDirectory_ListUsers_FullMethodName, UserDirectoryServer.ListUsers)},
		{MethodName: "ChangePassword", Handler: unaryHandler(UserDirectory_ChangePassword_FullMethodName, UserDirectoryServer.ChangePassword)},
		{MethodName: "GetBanStatus", Handler: unaryHandler(UserDirectory_GetBanStatus_FullMethodName, UserDirectoryServer.GetBanStatus)},
		{MethodName: "Ping", Handler: unaryHandler(UserDirectory_Ping_FullMethodName, UserDirectoryServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "userdirectory.proto",
}

type UserDirectoryClient interface {
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListUsers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ChangePassword(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBanStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type userDirectoryClient struct {
	cc grpc.ClientConnInterface
}

func NewUserDirectoryClient(cc grpc.ClientConnInterface) UserDirectoryClient {
	return &userDirectoryClient{cc}
}

func (c *userDirectoryClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_Register_FullMethodName, in, opts)
}
func (c *userDirectoryClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_Login_FullMethodName, in, opts)
}
func (c *userDirectoryClient) GetUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_GetUser_FullMethodName, in, opts)
}
func (c *userDirectoryClient) ListUsers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_ListUsers_FullMethodName, in, opts)
}
func (c *userDirectoryClient) ChangePassword(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_ChangePassword_FullMethodName, in, opts)
}
func (c *userDirectoryClient) GetBanStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_GetBanStatus_FullMethodName, in, opts)
}
func (c *userDirectoryClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UserDirectory_Ping_FullMethodName, in, opts)
}
