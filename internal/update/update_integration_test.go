//go:build integration

package update

import (
	"context"
	"testing"
)

func TestCheckForUpdateIntegration(t *testing.T) {
	// A very old version so that any published release counts as newer.
	rel, err := CheckForUpdate(context.Background(), "0.0.1", "justinpbarnett/skillcat")
	if err != nil {
		t.Fatalf("CheckForUpdate returned error: %v", err)
	}
	if rel == nil {
		t.Skip("no releases published yet")
	}
	if rel.Version == "" {
		t.Error("release version is empty")
	}
	t.Logf("latest release: v%s", rel.Version)
}
