package tasks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/encore/internal/catalog"
	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/practice"
	"github.com/desertthunder/encore/internal/repositories"
	"github.com/desertthunder/encore/internal/shared"
)

// TrackerOpts configures a [Tracker]. Only Store is required.
type TrackerOpts struct {
	Store            repositories.KVStore
	Catalog          *catalog.Catalog // defaults to catalog.Default()
	Clock            shared.Clock     // defaults to the system clock
	Jitter           finder.Jitter    // defaults to a time-seeded source
	Logger           *log.Logger      // defaults to a discarding logger
	NewID            func() string    // defaults to shared.GenerateID
	MinSessionLength time.Duration    // defaults to practice.MinSessionLength
}

// Tracker is the application state: every tracked collection plus the
// collaborators needed to change it.
type Tracker struct {
	repos      *repositories.Repositories
	catalog    *catalog.Catalog
	clock      shared.Clock
	jitter     finder.Jitter
	logger     *log.Logger
	newID      func() string
	minSession time.Duration

	repertoire []models.RepertoireItem
	auditions  []models.Audition
	sessions   []models.PracticeSession
	favorites  []string
	settings   models.UserSettings
}

// NewTracker loads every collection from opts.Store.
func NewTracker(ctx context.Context, opts TrackerOpts) (*Tracker, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: tracker requires a store", shared.ErrInvalidInput)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = shared.SystemClock{}
	}
	if opts.Jitter == nil {
		opts.Jitter = finder.NewJitter(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.NewID == nil {
		opts.NewID = shared.GenerateID
	}
	if opts.MinSessionLength <= 0 {
		opts.MinSessionLength = practice.MinSessionLength
	}

	t := &Tracker{
		repos:      repositories.New(opts.Store),
		catalog:    opts.Catalog,
		clock:      opts.Clock,
		jitter:     opts.Jitter,
		logger:     shared.WithLogger(opts.Logger, "component", "tracker"),
		newID:      opts.NewID,
		minSession: opts.MinSessionLength,
	}

	if err := t.load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) load(ctx context.Context) error {
	var err error
	if t.repertoire, err = t.repos.Repertoire.Load(ctx); err != nil {
		return err
	}
	if t.auditions, err = t.repos.Auditions.Load(ctx); err != nil {
		return err
	}
	if t.sessions, err = t.repos.Practice.Load(ctx); err != nil {
		return err
	}
	if t.favorites, err = t.repos.Favorites.Load(ctx); err != nil {
		return err
	}
	if t.settings, err = t.repos.Settings.Load(ctx); err != nil {
		return err
	}

	t.logger.Debug("state loaded",
		"repertoire", len(t.repertoire),
		"auditions", len(t.auditions),
		"sessions", len(t.sessions),
		"favorites", len(t.favorites),
	)
	return nil
}

// Catalog returns the catalog the tracker resolves songs against.
func (t *Tracker) Catalog() *catalog.Catalog { return t.catalog }

// Now returns the tracker clock's current time.
func (t *Tracker) Now() time.Time { return t.clock.Now() }

func (t *Tracker) saveRepertoire(ctx context.Context, items []models.RepertoireItem) error {
	if err := t.repos.Repertoire.Save(ctx, items); err != nil {
		return err
	}
	t.repertoire = items
	t.logger.Debug("saved", "key", repositories.KeyRepertoire, "count", len(items))
	return nil
}

func (t *Tracker) saveAuditions(ctx context.Context, items []models.Audition) error {
	if err := t.repos.Auditions.Save(ctx, items); err != nil {
		return err
	}
	t.auditions = items
	t.logger.Debug("saved", "key", repositories.KeyAuditions, "count", len(items))
	return nil
}

func (t *Tracker) saveSessions(ctx context.Context, items []models.PracticeSession) error {
	if err := t.repos.Practice.Save(ctx, items); err != nil {
		return err
	}
	t.sessions = items
	t.logger.Debug("saved", "key", repositories.KeyPractice, "count", len(items))
	return nil
}

func (t *Tracker) saveFavorites(ctx context.Context, ids []string) error {
	if err := t.repos.Favorites.Save(ctx, ids); err != nil {
		return err
	}
	t.favorites = ids
	t.logger.Debug("saved", "key", repositories.KeyFavorites, "count", len(ids))
	return nil
}
