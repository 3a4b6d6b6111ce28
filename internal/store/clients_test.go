package store_test

import (
	"context"
	"strings"
	"testing"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

func TestClientStatsRecomputedOnLoad(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		clientID  string
		total     int
		active    int
		delivered int
	}{
		{"c1", 1, 0, 1}, // p2 in REVIEW, a4 delivered
		{"c2", 1, 1, 1}, // p1 active, a1 delivered
		{"c3", 1, 0, 0}, // p3 planning, nothing delivered
	}

	for _, tt := range tests {
		c, err := s.Client(tt.clientID)
		if err != nil {
			t.Fatalf("Client(%s): %v", tt.clientID, err)
		}
		if c.TotalProjects != tt.total {
			t.Fatalf("%s: expected %d total projects, got %d", tt.clientID, tt.total, c.TotalProjects)
		}
		if c.ActiveProjects != tt.active {
			t.Fatalf("%s: expected %d active projects, got %d", tt.clientID, tt.active, c.ActiveProjects)
		}
		if c.AssetsDelivered != tt.delivered {
			t.Fatalf("%s: expected %d delivered assets, got %d", tt.clientID, tt.delivered, c.AssetsDelivered)
		}
	}
}

func TestAssetDeliveryBumpsClientCounter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// a2 belongs to c1 and is pending review.
	if err := s.UpdateAssetStatus(ctx, "a2", model.AssetDelivered); err != nil {
		t.Fatalf("UpdateAssetStatus: %v", err)
	}
	c, _ := s.Client("c1")
	if c.AssetsDelivered != 2 {
		t.Fatalf("expected 2 delivered after transition, got %d", c.AssetsDelivered)
	}

	// Moving it back out of DELIVERED must decrement: counters are rebuilt
	// from scratch, never incrementally patched.
	if err := s.UpdateAssetStatus(ctx, "a2", model.AssetDraft); err != nil {
		t.Fatalf("UpdateAssetStatus: %v", err)
	}
	c, _ = s.Client("c1")
	if c.AssetsDelivered != 1 {
		t.Fatalf("expected 1 delivered after revert, got %d", c.AssetsDelivered)
	}
}

func TestProjectStatusChangeRecomputesStats(t *testing.T) {
	s := newTestStore(t)

	status := model.ProjectActive
	if err := s.UpdateProject(context.Background(), "p3", store.ProjectUpdate{Status: &status}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	c, _ := s.Client("c3")
	if c.ActiveProjects != 1 {
		t.Fatalf("expected 1 active project for c3, got %d", c.ActiveProjects)
	}
}

func TestDeleteAssetRecomputesStats(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteAsset(context.Background(), "a1"); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}

	c, _ := s.Client("c2")
	if c.AssetsDelivered != 0 {
		t.Fatalf("expected 0 delivered for c2 after delete, got %d", c.AssetsDelivered)
	}
}

func TestRegisterClientCreatesPortalUser(t *testing.T) {
	s := newTestStore(t)

	client, err := s.RegisterClient(context.Background(), store.RegisterClientParams{
		Name:    "Lena Ortiz",
		Company: "Northwind",
		Email:   "lena@northwind.com",
	})
	if err != nil {
		t.Fatalf("RegisterClient: %v", err)
	}
	if client.Status != model.ClientActive {
		t.Fatalf("expected ACTIVE status, got %s", client.Status)
	}

	u, err := s.UserByEmail("lena@northwind.com")
	if err != nil {
		t.Fatalf("portal user not created: %v", err)
	}
	if u.Role != model.RoleClient {
		t.Fatalf("expected CLIENT role, got %s", u.Role)
	}
	linked := false
	for _, id := range u.AssignedClientIDs {
		if id == client.ID {
			linked = true
		}
	}
	if !linked {
		t.Fatalf("portal user not linked to client %s", client.ID)
	}

	// Default portal password applies.
	if _, err := s.Authenticate("lena@northwind.com", "password123"); err != nil {
		t.Fatalf("portal login with default password: %v", err)
	}
}

func TestRegisterClientHashFailureLeavesNoRecord(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Clients())

	// bcrypt rejects passwords longer than 72 bytes.
	_, err := s.RegisterClient(context.Background(), store.RegisterClientParams{
		Name:     "Eve Long",
		Company:  "Longpass Inc",
		Email:    "eve@longpass.com",
		Password: strings.Repeat("x", 80),
	})
	if err == nil {
		t.Fatal("expected an error for an oversized password")
	}
	if got := len(s.Clients()); got != before {
		t.Fatalf("expected %d clients after failed onboarding, got %d", before, got)
	}
	if _, err := s.UserByEmail("eve@longpass.com"); err != store.ErrNotFound {
		t.Fatalf("expected no portal user, got %v", err)
	}
}
