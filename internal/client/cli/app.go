package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	api    pb.TodoServiceClient
	conn   io.Closer
	reader *bufio.Reader
	out    io.Writer

	token string
	email string

	mu   sync.Mutex
	mode Mode
}

// dialOptions sizes call messages so a photo of the server's upload limit
// can be sent and read back.
func dialOptions(c *config.Config) []grpc.DialOption {
	limit := common.GRPCMessageLimit(c.MaxUploadBytes)
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(limit),
			grpc.MaxCallSendMsgSize(limit),
		),
	}
}

// NewApp dials the server lazily; the first call establishes the connection.
func NewApp(c *config.Config) (*App, error) {
	conn, err := grpc.NewClient(c.ServerEndpointAddr, dialOptions(c)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.ServerEndpointAddr, err)
	}
	return newApp(c, pb.NewTodoServiceClient(conn), conn, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, client pb.TodoServiceClient, conn io.Closer, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		api:    client,
		conn:   conn,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run starts the connectivity watcher and the REPL and returns when the
// user quits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if a.conn != nil {
			_ = a.conn.Close()
		}
	}()

	fmt.Fprintln(a.out, "Welcome to todokeeper CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	s := a.email
	if m := a.Mode(); m != "" {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(m Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = m
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.checkOnline(ctx)
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if _, err := a.api.Ping(ctx, &pb.PingRequest{}); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// callContext bounds a request and attaches the session token, if any.
func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	return a.withToken(ctx), cancel
}

func (a *App) withToken(ctx context.Context) context.Context {
	if a.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerScheme+a.token)
}
