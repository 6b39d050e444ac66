package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/cache"
	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/config"
	"github.com/dmitrijs2005/learnhub/internal/client/identity"
	"github.com/dmitrijs2005/learnhub/internal/client/prefsync"
	"github.com/dmitrijs2005/learnhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/learnhub/internal/client/services"
	"github.com/dmitrijs2005/learnhub/internal/client/theme"
	"github.com/dmitrijs2005/learnhub/internal/filex"
	"github.com/dmitrijs2005/learnhub/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	identities  *identity.Provider
	controller  *prefsync.Controller
	prefs       *prefsync.Binding
	presenter   *theme.Presenter
	logger      logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer

	mu       sync.Mutex
	mode     Mode
	userName string
}

// NewApp opens the local database, connects the API client and builds the
// preference controller with its initial state taken from the cache.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	l := logging.NewConsole(os.Stderr, slog.LevelInfo).With("app", "learnhub-cli")

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RemoteTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	prefCache, err := newCache(c, db, l)
	if err != nil {
		_ = db.Close()
		_ = apiClient.Close()
		return nil, err
	}

	ids := identity.NewProvider()
	presenter := theme.NewPresenter(os.Stdout)
	ctrl := prefsync.NewController(prefCache, prefsync.NewClientStore(apiClient), presenter,
		prefsync.WithFallback(c.FallbackTheme),
		prefsync.WithLogger(l),
	)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, db, ids),
		identities:  ids,
		controller:  ctrl,
		prefs:       prefsync.NewBinding(ctrl),
		presenter:   presenter,
		logger:      l,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		mode:        ModeOffline,
	}, nil
}

func newCache(c *config.Config, db *sql.DB, l logging.Logger) (cache.Cache, error) {
	switch c.CacheKind {
	case cache.KindFile:
		return cache.NewFileCache(c.CacheFile, l)
	case cache.KindMemory:
		return cache.NewMemoryCache(), nil
	default:
		return cache.NewSQLiteCache(metadata.NewSQLiteRepository(db), l), nil
	}
}

// Run follows identity changes, watches connectivity and serves the REPL
// until the user leaves or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.controller.Follow(ctx, a.identities)
	}()
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	a.Root(ctx)

	cancel()
	wg.Wait()

	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "closing database", "error", err)
	}
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, a.presenter.Styles().Banner.Render("Welcome to LearnHub CLI (type 'help' for commands)"))
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return !a.identities.Current().IsNone()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	user, mode := a.userName, a.mode
	a.mu.Unlock()

	s := ""
	if user != "" {
		s = user + " "
	}
	if mode != "" {
		s += string(mode) + " "
	}
	s += a.prefs.CurrentDraftValue().String()
	if a.prefs.IsDirty() {
		s += "*"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, a.config.RemoteTimeout)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
