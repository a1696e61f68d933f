// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: outings/v1/outings.proto

package outingsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OutingsService_CreateOuting_FullMethodName  = "/outings.v1.OutingsService/CreateOuting"
	OutingsService_ListOutings_FullMethodName   = "/outings.v1.OutingsService/ListOutings"
	OutingsService_DeleteOuting_FullMethodName  = "/outings.v1.OutingsService/DeleteOuting"
	OutingsService_UploadReceipt_FullMethodName = "/outings.v1.OutingsService/UploadReceipt"
	OutingsService_GetReceipt_FullMethodName    = "/outings.v1.OutingsService/GetReceipt"
	OutingsService_ListReceipts_FullMethodName  = "/outings.v1.OutingsService/ListReceipts"
	OutingsService_ExportOuting_FullMethodName  = "/outings.v1.OutingsService/ExportOuting"
)

// OutingsServiceClient is the client API for OutingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type OutingsServiceClient interface {
	CreateOuting(ctx context.Context, in *CreateOutingRequest, opts ...grpc.CallOption) (*CreateOutingResponse, error)
	ListOutings(ctx context.Context, in *ListOutingsRequest, opts ...grpc.CallOption) (*ListOutingsResponse, error)
	DeleteOuting(ctx context.Context, in *DeleteOutingRequest, opts ...grpc.CallOption) (*DeleteOutingResponse, error)
	// UploadReceipt runs the extraction pipeline over raw image bytes and
	// persists the result under the given outing. Re-uploading bytes that
	// were already processed returns the stored receipt with existing=true.
	UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error)
	GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error)
	ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error)
	ExportOuting(ctx context.Context, in *ExportOutingRequest, opts ...grpc.CallOption) (*ExportOutingResponse, error)
}

type outingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOutingsServiceClient(cc grpc.ClientConnInterface) OutingsServiceClient {
	return &outingsServiceClient{cc}
}

func (c *outingsServiceClient) CreateOuting(ctx context.Context, in *CreateOutingRequest, opts ...grpc.CallOption) (*CreateOutingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateOutingResponse)
	err := c.cc.Invoke(ctx, OutingsService_CreateOuting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) ListOutings(ctx context.Context, in *ListOutingsRequest, opts ...grpc.CallOption) (*ListOutingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListOutingsResponse)
	err := c.cc.Invoke(ctx, OutingsService_ListOutings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) DeleteOuting(ctx context.Context, in *DeleteOutingRequest, opts ...grpc.CallOption) (*DeleteOutingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteOutingResponse)
	err := c.cc.Invoke(ctx, OutingsService_DeleteOuting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadReceiptResponse)
	err := c.cc.Invoke(ctx, OutingsService_UploadReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReceiptResponse)
	err := c.cc.Invoke(ctx, OutingsService_GetReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReceiptsResponse)
	err := c.cc.Invoke(ctx, OutingsService_ListReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *outingsServiceClient) ExportOuting(ctx context.Context, in *ExportOutingRequest, opts ...grpc.CallOption) (*ExportOutingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportOutingResponse)
	err := c.cc.Invoke(ctx, OutingsService_ExportOuting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OutingsServiceServer is the server API for OutingsService service.
// All implementations must embed UnimplementedOutingsServiceServer
// for forward compatibility.
type OutingsServiceServer interface {
	CreateOuting(context.Context, *CreateOutingRequest) (*CreateOutingResponse, error)
	ListOutings(context.Context, *ListOutingsRequest) (*ListOutingsResponse, error)
	DeleteOuting(context.Context, *DeleteOutingRequest) (*DeleteOutingResponse, error)
	// UploadReceipt runs the extraction pipeline over raw image bytes and
	// persists the result under the given outing. Re-uploading bytes that
	// were already processed returns the stored receipt with existing=true.
	UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error)
	GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error)
	ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error)
	ExportOuting(context.Context, *ExportOutingRequest) (*ExportOutingResponse, error)
	mustEmbedUnimplementedOutingsServiceServer()
}

// UnimplementedOutingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOutingsServiceServer struct{}

func (UnimplementedOutingsServiceServer) CreateOuting(context.Context, *CreateOutingRequest) (*CreateOutingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateOuting not implemented")
}
func (UnimplementedOutingsServiceServer) ListOutings(context.Context, *ListOutingsRequest) (*ListOutingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOutings not implemented")
}
func (UnimplementedOutingsServiceServer) DeleteOuting(context.Context, *DeleteOutingRequest) (*DeleteOutingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteOuting not implemented")
}
func (UnimplementedOutingsServiceServer) UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadReceipt not implemented")
}
func (UnimplementedOutingsServiceServer) GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReceipt not implemented")
}
func (UnimplementedOutingsServiceServer) ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReceipts not implemented")
}
func (UnimplementedOutingsServiceServer) ExportOuting(context.Context, *ExportOutingRequest) (*ExportOutingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportOuting not implemented")
}
func (UnimplementedOutingsServiceServer) mustEmbedUnimplementedOutingsServiceServer() {}
func (UnimplementedOutingsServiceServer) testEmbeddedByValue()                        {}

// UnsafeOutingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OutingsServiceServer will
// result in compilation errors.
type UnsafeOutingsServiceServer interface {
	mustEmbedUnimplementedOutingsServiceServer()
}

func RegisterOutingsServiceServer(s grpc.ServiceRegistrar, srv OutingsServiceServer) {
	// If the following call pancis, it indicates UnimplementedOutingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OutingsService_ServiceDesc, srv)
}

func _OutingsService_CreateOuting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateOutingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).CreateOuting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_CreateOuting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).CreateOuting(ctx, req.(*CreateOutingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_ListOutings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOutingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).ListOutings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_ListOutings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).ListOutings(ctx, req.(*ListOutingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_DeleteOuting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteOutingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).DeleteOuting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_DeleteOuting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).DeleteOuting(ctx, req.(*DeleteOutingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_UploadReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).UploadReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_UploadReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).UploadReceipt(ctx, req.(*UploadReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_GetReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).GetReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_GetReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).GetReceipt(ctx, req.(*GetReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_ListReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).ListReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_ListReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).ListReceipts(ctx, req.(*ListReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OutingsService_ExportOuting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportOutingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OutingsServiceServer).ExportOuting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OutingsService_ExportOuting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OutingsServiceServer).ExportOuting(ctx, req.(*ExportOutingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OutingsService_ServiceDesc is the grpc.ServiceDesc for OutingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OutingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "outings.v1.OutingsService",
	HandlerType: (*OutingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateOuting",
			Handler:    _OutingsService_CreateOuting_Handler,
		},
		{
			MethodName: "ListOutings",
			Handler:    _OutingsService_ListOutings_Handler,
		},
		{
			MethodName: "DeleteOuting",
			Handler:    _OutingsService_DeleteOuting_Handler,
		},
		{
			MethodName: "UploadReceipt",
			Handler:    _OutingsService_UploadReceipt_Handler,
		},
		{
			MethodName: "GetReceipt",
			Handler:    _OutingsService_GetReceipt_Handler,
		},
		{
			MethodName: "ListReceipts",
			Handler:    _OutingsService_ListReceipts_Handler,
		},
		{
			MethodName: "ExportOuting",
			Handler:    _OutingsService_ExportOuting_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "outings/v1/outings.proto",
}
