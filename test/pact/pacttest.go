//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "merrymatch-api"
	ConsumerName = "gift-desk"

	StateEmptyRegistry    = "the registry is empty"
	StateWishExists       = "a pending wish for Bo exists"
	StateMatchableRecords = "a compatible donation and wish exist"
)

const (
	ExampleDonor     = "Ann"
	ExampleRecipient = "Bo"
	ExampleItem      = "Lego Set"
	ExampleCategory  = "Toys"
	MissingDonor     = "Nobody"

	DatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the gift desk consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleDonationBody is the request body the consumer sends to create a donation.
func ExampleDonationBody() map[string]any {
	return map[string]any{
		"donor":    ExampleDonor,
		"item":     ExampleItem,
		"quantity": 3,
		"category": ExampleCategory,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
