package preferences

import (
	"context"
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// DefaultProfile is the section used when no profile is named.
const DefaultProfile = "DEFAULT"

// Registry reads dashboard preferences from an ini file with one section per profile:
//
//	[DEFAULT]
//	objective = reduce-churn
//	theme = dark
//	period_days = 30
//	compare_with_previous = true
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetPreferences(ctx context.Context, profile string) (domain.Preferences, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the profile file. An empty path gives a registry holding only the defaults.
func NewRegistry(path string) (Registry, error) {
	if path == "" {
		return &cfgRegistry{cfg: ini.Empty()}, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// Default is the dashboard configuration of a fresh installation.
func Default() domain.Preferences {
	return domain.Preferences{
		Profile:             DefaultProfile,
		Objective:           domain.ObjectiveNone,
		Theme:               "light",
		PeriodDays:          30,
		CompareWithPrevious: true,
	}
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetPreferences returns the profile's settings with unset keys taken from Default.
// The default profile is always available.
func (cr *cfgRegistry) GetPreferences(_ context.Context, profile string) (domain.Preferences, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		if profile != DefaultProfile {
			return domain.Preferences{}, domain.NewNotFoundError("profile", profile)
		}
		section = cr.cfg.Section(DefaultProfile)
	}

	prefs := Default()
	prefs.Profile = profile
	prefs.Objective = domain.Objective(stringKey(section, "objective", string(prefs.Objective)))
	prefs.RevenueModel = stringKey(section, "revenue_model", "")
	prefs.Stage = stringKey(section, "stage", "")
	prefs.Theme = stringKey(section, "theme", prefs.Theme)
	if section.HasKey("period_days") {
		prefs.PeriodDays = section.Key("period_days").MustInt(prefs.PeriodDays)
	}
	if section.HasKey("compare_with_previous") {
		prefs.CompareWithPrevious = section.Key("compare_with_previous").MustBool(prefs.CompareWithPrevious)
	}
	if section.HasKey("onboarding_seen") {
		prefs.OnboardingSeen = section.Key("onboarding_seen").MustBool(prefs.OnboardingSeen)
	}

	var errs domain.ValidationErrors
	if !prefs.Objective.Valid() {
		errs.Add("objective", fmt.Sprintf("unknown objective %q", prefs.Objective))
	}
	if prefs.PeriodDays <= 0 {
		errs.Add("period_days", "must be positive")
	}
	if errs.HasErrors() {
		return domain.Preferences{}, fmt.Errorf("profile %s: %w", profile, errs)
	}
	return prefs, nil
}

// stringKey reads a key without creating it in the section.
func stringKey(section *ini.Section, name, fallback string) string {
	if !section.HasKey(name) {
		return fallback
	}
	return section.Key(name).MustString(fallback)
}
