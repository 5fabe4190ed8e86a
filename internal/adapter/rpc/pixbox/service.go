package pixbox

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "pixbox.Storage"

	Storage_Upload_FullMethodName   = "/pixbox.Storage/Upload"
	Storage_Download_FullMethodName = "/pixbox.Storage/Download"
)

// StorageServer is the server API for the Storage service.
type StorageServer interface {
	Upload(context.Context, *Image) (*StorageResponse, error)
	Download(context.Context, *ImageRequest) (*Image, error)
}

// UnimplementedStorageServer can be embedded to have forward compatible
// implementations.
type UnimplementedStorageServer struct{}

func (UnimplementedStorageServer) Upload(context.Context, *Image) (*StorageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Upload not implemented")
}

func (UnimplementedStorageServer) Download(context.Context, *ImageRequest) (*Image, error) {
	return nil, status.Error(codes.Unimplemented, "method Download not implemented")
}

func RegisterStorageServer(s grpc.ServiceRegistrar, srv StorageServer) {
	s.RegisterService(&Storage_ServiceDesc, srv)
}

func _Storage_Upload_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Image)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorageServer).Upload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Storage_Upload_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StorageServer).Upload(ctx, req.(*Image))
	}
	return interceptor(ctx, in, info, handler)
}

func _Storage_Download_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorageServer).Download(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Storage_Download_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StorageServer).Download(ctx, req.(*ImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Storage_ServiceDesc is the grpc.ServiceDesc for the Storage service.
var Storage_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorageServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Upload",
			Handler:    _Storage_Upload_Handler,
		},
		{
			MethodName: "Download",
			Handler:    _Storage_Download_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pixbox.proto",
}
