// Package server wires the todokeeper backend together: it picks the record
// and blob backends from Config, builds the services and runs the gRPC and
// HTTP transports until a signal or a fatal error stops them.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"

	gs "github.com/dmitrijs2005/todokeeper/internal/server/grpc"
	hs "github.com/dmitrijs2005/todokeeper/internal/server/http"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	repos             repomanager.RepositoryManager
	tokens            *auth.TokenService
	userService       *services.UserService
	todoService       *services.TodoService
	attachmentService *services.AttachmentService
}

var (
	newLogger    = logging.New
	openPostgres = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
		return repomanager.OpenPostgres(ctx, dsn)
	}
	newS3Store = func(ctx context.Context, opts blobstore.S3Options) (blobstore.Store, error) {
		return blobstore.NewS3Store(ctx, opts)
	}
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := newLogger(c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "session tokens are signed with the development secret key, set JWT_SECRET_KEY")
	}

	tokens, err := auth.NewTokenService(c.SecretKey, c.TokenAlgorithm, c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	repos, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c, logger)
	if err != nil {
		repos.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	return &App{
		config:            c,
		logger:            logger,
		repos:             repos,
		tokens:            tokens,
		userService:       services.NewUserService(repos, auth.NewPasswordHasher(c.BcryptCost), tokens, logger),
		todoService:       services.NewTodoService(repos, c.EnforceTodoOwnership, logger),
		attachmentService: services.NewAttachmentService(repos, blobs, logger),
	}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, c.DatabaseDSN)
	case config.BackendMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func newBlobStore(ctx context.Context, c *config.Config, logger logging.Logger) (blobstore.Store, error) {
	var store blobstore.Store

	switch c.BlobBackend {
	case config.BackendS3:
		s, err := newS3Store(ctx, blobstore.S3Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, err
		}
		store = s
	case config.BackendMemory:
		store = blobstore.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown blob backend %q", c.BlobBackend)
	}

	return blobstore.NewRetrying(store, c.BlobRetries, logger.With("module", "blobstore")), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.tokens,
		app.userService, app.todoService, app.attachmentService, app.config.MaxUploadBytes)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := hs.NewHandler(app.userService, app.todoService, app.attachmentService, app.config.MaxUploadBytes)
	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, hs.NewRouter(h, app.tokens, app.logger), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both transports until ctx is cancelled, a signal arrives or
// one of the servers fails, then releases the record store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err)
	}
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}

	app.logger.Info(ctx, "App stopped")
}
