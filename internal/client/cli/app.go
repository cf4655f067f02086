package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/outreach/internal/client/api"
	"github.com/dmitrijs2005/outreach/internal/client/auth"
	"github.com/dmitrijs2005/outreach/internal/client/config"
	"github.com/dmitrijs2005/outreach/internal/client/journal"
	"github.com/dmitrijs2005/outreach/internal/client/router"
	"github.com/dmitrijs2005/outreach/internal/client/services"
	"github.com/dmitrijs2005/outreach/internal/client/store"
	"github.com/dmitrijs2005/outreach/internal/filex"
	"github.com/dmitrijs2005/outreach/internal/logging"
)

// History is the read side of the action journal.
type History interface {
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
	RecentForStore(ctx context.Context, storeName string, limit int) ([]journal.Entry, error)
	Count(ctx context.Context) (int64, error)
	Prune(ctx context.Context, keep int) (int64, error)
}

// Deps are the collaborators an App renders and drives.
type Deps struct {
	Logger   logging.Logger
	Tokens   *api.TokenHolder
	Dialogs  *store.DialogStore
	Profiles *store.ProfileStore
	Stories  *store.StoryStore
	History  History
	Router   *router.Router
	In       io.Reader
	Out      io.Writer
}

type App struct {
	logger   logging.Logger
	tokens   *api.TokenHolder
	dialogs  *store.DialogStore
	profiles *store.ProfileStore
	stories  *store.StoryStore
	history  History
	router   *router.Router
	now      func() time.Time

	reader  *bufio.Reader
	out     io.Writer
	view    router.Match
	session auth.Session
	closers []func() error
}

func New(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.NopLogger{}
	}
	if d.Tokens == nil {
		d.Tokens = &api.TokenHolder{}
	}
	if d.Router == nil {
		d.Router = router.New(router.Routes, nil)
	}
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	return &App{
		logger:   d.Logger,
		tokens:   d.Tokens,
		dialogs:  d.Dialogs,
		profiles: d.Profiles,
		stories:  d.Stories,
		history:  d.History,
		router:   d.Router,
		now:      time.Now,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
	}
}

// NewApp wires the production stack described by c: journal database, HTTP
// transport, services, stores and router.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.JournalPath); err != nil {
		return nil, err
	}
	db, err := journal.OpenDB(ctx, c.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	j := journal.New(db, logger)
	if n, err := j.Prune(ctx, journal.DefaultKeep); err != nil {
		logger.Warn(ctx, "journal prune failed", "error", err)
	} else if n > 0 {
		logger.Debug(ctx, "journal pruned", "deleted", n)
	}

	tokens := &api.TokenHolder{}
	client := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, tokens, logger)
	opts := []store.Option{store.WithLogger(logger), store.WithRecorder(j)}

	a := New(Deps{
		Logger:   logger,
		Tokens:   tokens,
		Dialogs:  store.NewDialogStore(services.NewOpenerService(client), opts...),
		Profiles: store.NewProfileStore(services.NewProfileService(client), opts...),
		Stories:  store.NewStoryStore(services.NewStoryService(client), store.NewFormatRegistry(), opts...),
		History:  j,
		Router:   router.New(router.Routes, router.AuthGuard(c.AuthRequired, tokens.Token, time.Now)),
	})
	a.closers = append(a.closers, j.Close)
	return a, nil
}

// Run opens the home view and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Outreach admin console (type 'help' for commands)")
	if err := a.open(ctx, "/"); err != nil {
		printlnFn("error:", err)
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) status() string {
	s := a.view.Path
	if s == "" {
		s = "/"
	}
	if a.session.Subject != "" {
		s = a.session.Subject + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
