package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/snapshot"
)

func TestDefaultIsValid(t *testing.T) {
	if err := NewDefault().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateCollectsEveryError(t *testing.T) {
	cfg := NewDefault()
	cfg.Defaults.Currency = "rupiah"
	cfg.Defaults.NumberStyle = "fr"
	cfg.Defaults.Timezone = "Mars/Olympus"
	cfg.User.ID = "me"
	cfg.Remote.BaseURL = "ftp://example.com"
	cfg.Budget.WarnPercent = 95
	cfg.Analytics.Months = -1
	cfg.Kinds.Income = []string{"out"}
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, key := range []string{
		"defaults.currency", "defaults.number_style", "defaults.timezone", "user.id",
		"remote.base_url", "budget thresholds", "analytics.months", "kinds", "log.level", "log.format",
	} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error does not mention %s:\n%v", key, err)
		}
	}
	if !errors.Is(err, snapshot.ErrKindConflict) {
		t.Errorf("kind conflict should be wrapped: %v", err)
	}
}

func TestAccessors(t *testing.T) {
	cfg := NewDefault()
	id := uuid.New()
	cfg.User.ID = id.String()
	cfg.Defaults.Timezone = "Asia/Jakarta"
	cfg.Budget.WarnPercent = 80

	if cfg.UserID() != id {
		t.Errorf("UserID = %v, want %v", cfg.UserID(), id)
	}
	if cfg.Location().String() != "Asia/Jakarta" {
		t.Errorf("Location = %v", cfg.Location())
	}
	if th := cfg.Thresholds(); th.Warn.IntPart() != 80 || th.Danger.IntPart() != 90 {
		t.Errorf("Thresholds = %+v", th)
	}

	cfg.Defaults.Timezone = "nowhere"
	cfg.User.ID = ""
	if cfg.Location() != time.Local || cfg.UserID() != uuid.Nil {
		t.Errorf("fallbacks not applied")
	}
}
