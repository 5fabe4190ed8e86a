package e2e_test

import (
	"bytes"
	"context"
	"image/color"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/marcos-nsantos/pixbox/internal/adapter/handler"
	"github.com/marcos-nsantos/pixbox/internal/adapter/rpc/pixbox"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/server"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/storage"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/transform"
	"github.com/marcos-nsantos/pixbox/internal/usecase/imagestore"
)

const (
	apiBasePath = "/api/v1"
	maxMsgSize  = 8 << 20
)

type TestApp struct {
	EditedRoot string
	Client     pixbox.StorageClient
	HTTP       *httptest.Server
	Registry   *transform.Registry

	grpcServer *server.GRPCServer
	conn       *grpc.ClientConn
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	editedRoot := t.TempDir()
	localStorage, err := storage.NewLocalStorage(editedRoot)
	require.NoError(t, err)

	registry, err := transform.NewRegistry()
	require.NoError(t, err)

	imageSvc := imagestore.NewService(transform.NewSelector(registry, transform.DefaultSource), storage.NewImageCodec(), localStorage, logger)

	lis := bufconn.Listen(1 << 20)
	grpcSrv := server.NewGRPCServer(server.GRPCServerConfig{
		MaxMsgSize:             maxMsgSize,
		MaxConcurrentDownloads: 4,
		Service:                handler.NewStorageServer(imageSvc),
		Logger:                 logger,
	})
	go func() {
		_ = grpcSrv.Serve(lis)
	}()

	conn, err := pixbox.Dial("passthrough:///bufnet", maxMsgSize,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	router := server.NewRouter(server.RouterConfig{
		ImageHandler: handler.NewImageHandler(imageSvc, maxMsgSize),
		Logger:       logger,
		Environment:  "test",
	})

	app := &TestApp{
		EditedRoot: editedRoot,
		Client:     pixbox.NewStorageClient(conn),
		HTTP:       httptest.NewServer(router.Engine()),
		Registry:   registry,
		grpcServer: grpcSrv,
		conn:       conn,
	}
	t.Cleanup(app.cleanup)
	return app
}

func (app *TestApp) cleanup() {
	app.HTTP.Close()
	app.conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.grpcServer.Shutdown(ctx)
}

func (app *TestApp) editedFiles(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(app.EditedRoot)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (app *TestApp) httpClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}
