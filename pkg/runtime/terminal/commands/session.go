package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/config"
	"github.com/de-tools/growth-scorecard/pkg/services/preferences"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/rs/zerolog"
)

// Reporter renders a report to the terminal.
type Reporter interface {
	Handle(report *domain.Report) error
}

// Flags are the root command options shared by every subcommand.
type Flags struct {
	ConfigPath string
	Driver     string
	DSN        string
	PrefsPath  string
	Profile    string
	Format     string
}

// Session holds what a command run needs. The store is opened on first use.
type Session struct {
	Registry    source.Registry
	Clock       clock.Clock
	Config      *config.Config
	Preferences domain.Preferences
	Logger      zerolog.Logger
	// LogOutput receives the console log; defaults to os.Stderr.
	LogOutput io.Writer

	store source.Store
}

// Load reads the configuration and preferences, applying the flag overrides.
func (s *Session) Load(ctx context.Context, flags Flags) error {
	cfg, err := config.LoadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	if flags.Driver != "" {
		cfg.Store.Driver = flags.Driver
	}
	if flags.DSN != "" {
		cfg.Store.DSN = flags.DSN
	}
	if flags.PrefsPath != "" {
		cfg.Preferences.Path = flags.PrefsPath
	}
	if flags.Profile != "" {
		cfg.Preferences.Profile = flags.Profile
	}

	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	out := s.LogOutput
	if out == nil {
		out = os.Stderr
	}
	s.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()

	prefsRegistry, err := preferences.NewRegistry(cfg.Preferences.Path)
	if err != nil {
		return err
	}
	prefs, err := prefsRegistry.GetPreferences(ctx, cfg.Preferences.Profile)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	s.Config = cfg
	s.Preferences = prefs
	s.Clock = clock.OrSystem(s.Clock)
	return nil
}

func (s *Session) Store(ctx context.Context) (source.Store, error) {
	if s.store != nil {
		return s.store, nil
	}
	store, err := s.Registry.Open(ctx, s.Config.Store.Driver, s.Config.Store.DSN)
	if err != nil {
		return nil, err
	}
	s.store = store
	return store, nil
}

func (s *Session) Engine() *recommendation.Engine {
	return recommendation.NewEngine(s.Config.Rules, s.Config.Signals, s.Clock)
}

func (s *Session) Scorecard(ctx context.Context) (*scorecard.Service, error) {
	store, err := s.Store(ctx)
	if err != nil {
		return nil, err
	}
	return scorecard.NewService(store, s.Engine(), s.Clock), nil
}

// Period is the preferred rolling window ending now; days overrides its length when positive.
func (s *Session) Period(days int) domain.Period {
	if days <= 0 {
		days = s.Preferences.PeriodDays
	}
	return domain.PeriodEndingAt(s.Clock.Now(), days, s.Preferences.CompareWithPrevious)
}

func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}
