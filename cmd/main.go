package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	httpctx "github.com/scic-labs/taskboard-server/internal/api/http/context"
	"github.com/scic-labs/taskboard-server/internal/api/http/router"
	httpServer "github.com/scic-labs/taskboard-server/internal/api/http/server"
	"github.com/scic-labs/taskboard-server/internal/config"
	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
	"github.com/scic-labs/taskboard-server/internal/repository/memory"
	"github.com/scic-labs/taskboard-server/internal/repository/mongo"
	"github.com/scic-labs/taskboard-server/internal/repository/postgres"
	"github.com/scic-labs/taskboard-server/internal/repository/sqlite"
	"github.com/scic-labs/taskboard-server/internal/server"
	"github.com/scic-labs/taskboard-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores holds the collections the service works on.
type stores struct {
	users model.DocumentStore
	tasks model.DocumentStore
	close func(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if slog.Level(cfg.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	logger.Info("storage connected", "driver", cfg.Database.Driver, "database", cfg.Database.Name)

	userService := service.NewUser(st.users, logger)
	taskService := service.NewTask(st.tasks, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(userService, taskService, ctxMgr, cfg.CORS.AllowedOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()

	if err := st.close(shutdownCtx); err != nil {
		logger.Error("error closing storage", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	switch cfg.Database.Driver {
	case config.DriverMongo:
		conn, err := mongo.NewConnection(connectCtx, cfg.Database.MongoURI(), cfg.Database.Name)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users: conn.Collection(model.UsersCollection),
			tasks: conn.Collection(model.TasksCollection),
			close: conn.Close,
		}, nil

	case config.DriverPostgres:
		conn, err := postgres.NewConnection(connectCtx, cfg.Postgres.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users: conn.Collection(model.UsersCollection),
			tasks: conn.Collection(model.TasksCollection),
			close: func(context.Context) error { return conn.Close() },
		}, nil

	case config.DriverSQLite:
		conn, err := sqlite.NewConnection(connectCtx, cfg.SQLite.Path)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users: conn.Collection(model.UsersCollection),
			tasks: conn.Collection(model.TasksCollection),
			close: func(context.Context) error { return conn.Close() },
		}, nil

	case config.DriverMemory:
		mem := memory.NewStore()
		return stores{
			users: mem.Collection(model.UsersCollection),
			tasks: mem.Collection(model.TasksCollection),
			close: func(context.Context) error { return nil },
		}, nil

	default:
		return stores{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
