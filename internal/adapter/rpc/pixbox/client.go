package pixbox

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// StorageClient is the client API for the Storage service.
type StorageClient interface {
	Upload(ctx context.Context, in *Image, opts ...grpc.CallOption) (*StorageResponse, error)
	Download(ctx context.Context, in *ImageRequest, opts ...grpc.CallOption) (*Image, error)
}

type storageClient struct {
	cc grpc.ClientConnInterface
}

func NewStorageClient(cc grpc.ClientConnInterface) StorageClient {
	return &storageClient{cc: cc}
}

func (c *storageClient) Upload(ctx context.Context, in *Image, opts ...grpc.CallOption) (*StorageResponse, error) {
	out := new(StorageResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, Storage_Upload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storageClient) Download(ctx context.Context, in *ImageRequest, opts ...grpc.CallOption) (*Image, error) {
	out := new(Image)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, Storage_Download_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Dial opens a plaintext connection to a Storage server. maxMsgSize bounds
// both directions; zero keeps the gRPC defaults.
func Dial(target string, maxMsgSize int, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if maxMsgSize > 0 {
		base = append(base, grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize),
		))
	}

	conn, err := grpc.NewClient(target, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return conn, nil
}
