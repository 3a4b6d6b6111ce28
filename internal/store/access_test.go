package store_test

import (
	"context"
	"testing"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

func TestImpersonationRequiresApproval(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Impersonate(context.Background(), "u1", "w1")
	if err != store.ErrAccessNotApproved {
		t.Fatalf("expected ErrAccessNotApproved, got %v", err)
	}

	// Denial raises a HIGH error notification to the admin.
	got := s.Notifications("u1")
	if len(got) != 1 || got[0].Title != "Access Denied" {
		t.Fatalf("expected denial notification, got %v", got)
	}
	if got[0].Type != model.NotifyError || got[0].Priority != model.PriorityHigh {
		t.Fatalf("denial notification shape wrong: %+v", got[0])
	}
}

func TestImpersonationApprovedFlow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.RequestUserAccess(ctx, "u1", "w1"); err != nil {
		t.Fatalf("RequestUserAccess: %v", err)
	}

	// Target sees the request and is notified.
	target, _ := s.User("w1")
	if len(target.AccessRequests) != 1 || target.AccessRequests[0].Status != model.AccessPending {
		t.Fatalf("request not filed: %+v", target.AccessRequests)
	}
	if got := s.Notifications("w1"); len(got) != 1 || got[0].Title != "Access Requested" {
		t.Fatalf("target not notified: %v", got)
	}

	// A repeat request by the same admin is a no-op.
	if err := s.RequestUserAccess(ctx, "u1", "w1"); err != nil {
		t.Fatalf("duplicate RequestUserAccess: %v", err)
	}
	target, _ = s.User("w1")
	if len(target.AccessRequests) != 1 {
		t.Fatalf("duplicate request filed: %+v", target.AccessRequests)
	}

	if err := s.ResolveAccessRequest(ctx, "w1", "u1", model.AccessApproved); err != nil {
		t.Fatalf("ResolveAccessRequest: %v", err)
	}
	// Requester hears back.
	if got := s.Notifications("u1"); len(got) == 0 || got[0].Type != model.NotifySuccess {
		t.Fatalf("requester not notified of approval: %v", got)
	}

	u, err := s.Impersonate(ctx, "u1", "w1")
	if err != nil {
		t.Fatalf("Impersonate after approval: %v", err)
	}
	if u.ID != "w1" {
		t.Fatalf("expected target user, got %s", u.ID)
	}
}

func TestImpersonationRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.RequestUserAccess(ctx, "u1", "w1"); err != nil {
		t.Fatalf("RequestUserAccess: %v", err)
	}
	if err := s.ResolveAccessRequest(ctx, "w1", "u1", model.AccessRejected); err != nil {
		t.Fatalf("ResolveAccessRequest: %v", err)
	}

	if _, err := s.Impersonate(ctx, "u1", "w1"); err != store.ErrAccessNotApproved {
		t.Fatalf("expected ErrAccessNotApproved after rejection, got %v", err)
	}
}

func TestSelfImpersonationAllowed(t *testing.T) {
	s := newTestStore(t)

	u, err := s.Impersonate(context.Background(), "u1", "u1")
	if err != nil {
		t.Fatalf("self impersonation: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("expected u1, got %s", u.ID)
	}
}

func TestAccessRequestRequiresAdmin(t *testing.T) {
	s := newTestStore(t)

	if err := s.RequestUserAccess(context.Background(), "w1", "w2"); err != store.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin requester, got %v", err)
	}
	if _, err := s.Impersonate(context.Background(), "w1", "w2"); err != store.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin impersonation, got %v", err)
	}
}

func TestResolveUnknownRequest(t *testing.T) {
	s := newTestStore(t)

	err := s.ResolveAccessRequest(context.Background(), "w1", "u1", model.AccessApproved)
	if err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
