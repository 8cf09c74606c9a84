package timezones

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveIsCaseInsensitive(t *testing.T) {
	for _, code := range []string{"est", "EST", " est "} {
		zone, err := Resolve(code)
		if err != nil {
			t.Fatalf("resolve %q: %v", code, err)
		}
		if zone.Code != "EST" {
			t.Fatalf("expected EST, got %s", zone.Code)
		}
	}

	if _, err := Resolve("XYZ"); !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("expected ErrUnknownZone, got %v", err)
	}
}

func TestListIsSortedByCode(t *testing.T) {
	zones := List()
	if len(zones) != 12 {
		t.Fatalf("expected 12 zones, got %d", len(zones))
	}
	for i := 1; i < len(zones); i++ {
		if zones[i-1].Code >= zones[i].Code {
			t.Fatalf("list not sorted at %d: %s >= %s", i, zones[i-1].Code, zones[i].Code)
		}
	}
}

func TestAssignReportsPrevious(t *testing.T) {
	svc, err := Open(filepath.Join(t.TempDir(), "timezones.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	first, err := svc.Assign(ctx, "alice", "est")
	if err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if first.Zone.Code != "EST" || first.Previous != nil {
		t.Fatalf("unexpected first assignment: %+v", first)
	}

	second, err := svc.Assign(ctx, "alice", "KST")
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if second.Zone.Code != "KST" {
		t.Fatalf("expected KST, got %s", second.Zone.Code)
	}
	if second.Previous == nil || second.Previous.Code != "EST" {
		t.Fatalf("expected previous EST, got %+v", second.Previous)
	}
}

func TestAssignmentSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezones.json")
	ctx := context.Background()

	svc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Assign(ctx, "alice", "HKT"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	zone, err := reloaded.Current(ctx, "alice")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if zone.Code != "HKT" {
		t.Fatalf("expected HKT after reload, got %s", zone.Code)
	}

	if _, err := reloaded.Current(ctx, "bob"); !errors.Is(err, ErrNoAssignment) {
		t.Fatalf("expected ErrNoAssignment, got %v", err)
	}
}
