// Package diagnostics serves the liveness message and the store report used
// for manual health checks. The report is best-effort: store errors become
// data in the payload rather than HTTP errors.
package diagnostics

import (
	"context"
	"fmt"

	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/telemetry"
)

const (
	LivenessMessage = "HR Recruit API running"

	maxCollections = 10
	maxErrorChars  = 50
)

const (
	backendRunning    = "✅ Running"
	dbNotInitialized  = "⚠️  Available but not initialized"
	dbAvailable       = "✅ Available"
	dbWorking         = "✅ Connected & Working"
	dbFallback        = "⚠️  In-memory fallback: "
	urlSet            = "✅ Set"
	urlNotSet         = "❌ Not Set"
	statusConnected   = "Connected"
	statusUnconnected = "Not Connected"
)

// Report is the /test payload.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Service inspects the configured store. Fallback, when set, is why the
// in-memory store stands in for the configured one.
type Service struct {
	DB          docstore.Database
	DatabaseURL string
	Fallback    string
}

// NewService constructs a diagnostics service. db may be nil.
func NewService(db docstore.Database, databaseURL, fallback string) *Service {
	return &Service{DB: db, DatabaseURL: databaseURL, Fallback: fallback}
}

// Liveness returns the root payload.
func (s *Service) Liveness() map[string]string {
	return map[string]string{"message": LivenessMessage}
}

// Report lists up to ten collection names. It never returns an error; a
// store standing in for the configured one is reported as degraded.
func (s *Service) Report(ctx context.Context) Report {
	out := Report{
		Backend:          backendRunning,
		Database:         dbNotInitialized,
		ConnectionStatus: statusUnconnected,
		Collections:      []string{},
	}
	if s == nil || s.DB == nil {
		return out
	}

	urlState := urlNotSet
	if s.DatabaseURL != "" {
		urlState = urlSet
	}
	name := s.DB.Name()
	out.Database = dbAvailable
	out.DatabaseURL = &urlState
	out.DatabaseName = &name
	out.ConnectionStatus = statusConnected

	names, err := s.DB.ListCollectionNames(ctx)
	if err != nil {
		telemetry.Warn("diagnostics.list_collections_failed", map[string]any{"error": err})
		out.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), maxErrorChars))
		return out
	}
	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	if names != nil {
		out.Collections = names
	}
	if s.Fallback != "" {
		out.Database = dbFallback + truncate(s.Fallback, maxErrorChars)
		out.ConnectionStatus = statusUnconnected
		return out
	}
	out.Database = dbWorking
	return out
}

// truncate cuts s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
