package target

import (
	"path/filepath"
	"testing"
)

func TestArchivePath(t *testing.T) {
	got := Job.ArchivePath(filepath.Join("target", "lambda"))
	want := filepath.Join("target", "lambda", "job", "bootstrap.zip")
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestDestPath(t *testing.T) {
	got := API.DestPath(filepath.Join("home", "Downloads"), "gh-stats")
	want := filepath.Join("home", "Downloads", "gh-stats-api.zip")
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(all))
	}
	if all[0] != API || all[1] != Job {
		t.Fatalf("unexpected target order: %v", all)
	}
}
