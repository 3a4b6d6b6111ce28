package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
)

// RequestUserAccess files an impersonation request by an admin against a
// target user. A second request by the same admin is a no-op: a single
// request per requester is retained.
func (s *Store) RequestUserAccess(ctx context.Context, requesterID, targetUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requester := s.findUserLocked(requesterID)
	if requester == nil {
		return ErrNotFound
	}
	if requester.Role != model.RoleAdmin {
		return ErrForbidden
	}

	target := s.findUserLocked(targetUserID)
	if target == nil {
		return ErrNotFound
	}

	for _, r := range target.AccessRequests {
		if r.RequesterID == requesterID {
			return nil
		}
	}

	target.AccessRequests = append(target.AccessRequests, model.AccessRequest{
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		Timestamp:     time.Now(),
		Status:        model.AccessPending,
	})
	s.saveUsersLocked(ctx)

	s.notifyLocked(model.NotificationEvent{
		Title:        "Access Requested",
		Message:      "Admin " + requester.Name + " requested access.",
		Type:         model.NotifyWarning,
		Priority:     model.PriorityHigh,
		TargetUserID: targetUserID,
	})

	return nil
}

// ResolveAccessRequest lets the target user approve or reject a pending
// request keyed by requester id.
func (s *Store) ResolveAccessRequest(ctx context.Context, userID, requesterID string, status model.AccessRequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUserLocked(userID)
	if u == nil {
		return ErrNotFound
	}

	found := false
	for i := range u.AccessRequests {
		if u.AccessRequests[i].RequesterID == requesterID {
			u.AccessRequests[i].Status = status
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}

	s.saveUsersLocked(ctx)

	eventType := model.NotifySuccess
	if status != model.AccessApproved {
		eventType = model.NotifyError
	}
	s.notifyLocked(model.NotificationEvent{
		Title:        "Access " + string(status),
		Message:      u.Name + " responded to your request.",
		Type:         eventType,
		Priority:     model.PriorityHigh,
		TargetUserID: requesterID,
	})

	return nil
}

// Impersonate validates that admin adminID may assume targetUserID's session.
// It succeeds iff the target holds an APPROVED request from this admin;
// self-impersonation is always allowed. On denial a HIGH error notification is
// raised and no switch occurs.
func (s *Store) Impersonate(ctx context.Context, adminID, targetUserID string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := s.findUserLocked(adminID)
	if admin == nil {
		return model.User{}, ErrNotFound
	}
	if admin.Role != model.RoleAdmin {
		return model.User{}, ErrForbidden
	}

	target := s.findUserLocked(targetUserID)
	if target == nil {
		return model.User{}, ErrNotFound
	}

	approved := targetUserID == adminID
	for _, r := range target.AccessRequests {
		if r.RequesterID == adminID && r.Status == model.AccessApproved {
			approved = true
			break
		}
	}

	if !approved {
		s.notifyLocked(model.NotificationEvent{
			Title:        "Access Denied",
			Message:      "Need approval first.",
			Type:         model.NotifyError,
			Priority:     model.PriorityHigh,
			TargetUserID: adminID,
		})
		return model.User{}, ErrAccessNotApproved
	}

	s.logger.Info("impersonation started",
		zap.String("admin_id", adminID),
		zap.String("target_id", targetUserID),
	)

	s.notifyLocked(model.NotificationEvent{
		Title:        "Impersonation Started",
		Message:      "Viewing as " + target.Name,
		Type:         model.NotifyInfo,
		Priority:     model.PriorityMedium,
		TargetUserID: adminID,
	})

	return *target, nil
}
