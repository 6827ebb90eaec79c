package cli

import (
	"bytes"
	"context"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/blobstore"
	grpcserver "github.com/dmitrijs2005/todokeeper/internal/server/grpc"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// startServer runs a real todokeeper gRPC server on an in-memory listener
// and returns an App dialed to it with the CLI's own dial options.
func startServer(t *testing.T, maxUpload int64) (*App, *bytes.Buffer) {
	t.Helper()

	logger := logging.NewNop()
	m := repomanager.NewMemoryRepositoryManager()
	tokens, err := auth.NewTokenService("secret", "HS256", time.Hour)
	require.NoError(t, err)

	srv, err := grpcserver.NewGRPCServer("bufnet", logger, tokens,
		services.NewUserService(m, auth.NewPasswordHasher(bcrypt.MinCost), tokens, logger),
		services.NewTodoService(m, true, logger),
		services.NewAttachmentService(m, blobstore.NewMemoryStore(), logger),
		maxUpload)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()

	cfg := testConfig()
	cfg.MaxUploadBytes = maxUpload
	opts := append(dialOptions(cfg), grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})

	var out bytes.Buffer
	return newApp(cfg, pb.NewTodoServiceClient(conn), nil, strings.NewReader(""), &out), &out
}

func TestApp_PhotoRoundTripAtUploadLimit(t *testing.T) {
	const maxUpload = 5 << 20
	a, out := startServer(t, maxUpload)
	ctx := context.Background()

	_, err := a.api.Register(ctx, &pb.RegisterRequest{Email: "big@x.com", Password: "pw"})
	require.NoError(t, err)
	l, err := a.api.Login(ctx, &pb.LoginRequest{Email: "big@x.com", Password: "pw"})
	require.NoError(t, err)
	a.token = l.GetAccessToken()

	photo := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x5A}, maxUpload-8)...)

	oldRead, oldWrite := readFile, writeFile
	t.Cleanup(func() { readFile, writeFile = oldRead, oldWrite })
	var saved []byte
	readFile = func(string) ([]byte, error) { return photo, nil }
	writeFile = func(_ string, data []byte, _ os.FileMode) error {
		saved = data
		return nil
	}

	require.NoError(t, a.SetPhoto(ctx, "/tmp/big.png"), out.String())
	require.NoError(t, a.GetPhoto(ctx, "copy.png"), out.String())
	assert.Equal(t, photo, saved)
	assert.Contains(t, out.String(), "image/png")
}

func TestApp_TodoCommandsAgainstServer(t *testing.T) {
	a, out := startServer(t, 1<<20)
	ctx := context.Background()

	_, err := a.api.Register(ctx, &pb.RegisterRequest{Email: "t@x.com", Password: "pw"})
	require.NoError(t, err)
	l, err := a.api.Login(ctx, &pb.LoginRequest{Email: "t@x.com", Password: "pw"})
	require.NoError(t, err)
	a.token = l.GetAccessToken()

	created, err := a.api.CreateTodo(a.withToken(ctx), &pb.CreateTodoRequest{Name: "milk", Description: "2%"})
	require.NoError(t, err)
	id := created.GetTodo().GetId()

	require.NoError(t, a.Done(ctx, id))

	got, err := a.api.GetTodo(a.withToken(ctx), &pb.GetTodoRequest{Id: id})
	require.NoError(t, err)
	assert.True(t, got.GetTodo().GetComplete())
	assert.Equal(t, "2%", got.GetTodo().GetDescription())

	require.NoError(t, a.List(ctx))
	assert.Contains(t, out.String(), "[x]  "+id+"  milk")
}
