package store

import (
	"context"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/internal/util"
	"brandistry/pkg/metrics"
)

// Authenticate checks login credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (model.User, error) {
	u, err := s.UserByEmail(email)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if !util.CheckPassword(password, u.PasswordHash) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

type RegisterUserParams struct {
	Name          string
	Email         string
	Password      string
	Role          model.UserRole
	Specialty     string
	Company       string
	GeneratedByAI bool
}

// RegisterUser creates a user with the registration defaults and announces it.
func (s *Store) RegisterUser(ctx context.Context, p RegisterUserParams) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if p.Email != "" && s.users[i].Email == p.Email {
			return model.User{}, ErrEmailExists
		}
	}

	if p.Name == "" {
		p.Name = "New User"
	}
	if p.Role == "" {
		p.Role = model.RoleWorker
	}
	if p.Password == "" {
		p.Password = "password123"
	}

	hash, err := util.HashPassword(p.Password)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:             newID("u"),
		Name:           p.Name,
		Email:          p.Email,
		PasswordHash:   hash,
		Role:           p.Role,
		Avatar:         "https://i.pravatar.cc/150?u=" + p.Email,
		Specialty:      p.Specialty,
		Company:        p.Company,
		GeneratedByAI:  p.GeneratedByAI,
		AccessRequests: []model.AccessRequest{},
	}
	s.users = append(s.users, u)
	s.saveUsersLocked(ctx)
	metrics.IncrementStoreMutation(colUsers, "register")

	s.logger.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	s.notifyLocked(model.NotificationEvent{
		Title:    "User Registered",
		Message:  "Welcome " + u.Name + "!",
		Type:     model.NotifySuccess,
		Priority: model.PriorityMedium,
	})

	return u, nil
}

type UserUpdate struct {
	Name       *string         `json:"name,omitempty"`
	Email      *string         `json:"email,omitempty"`
	Role       *model.UserRole `json:"role,omitempty"`
	Avatar     *string         `json:"avatar,omitempty"`
	Company    *string         `json:"company,omitempty"`
	Specialty  *string         `json:"specialty,omitempty"`
	HourlyRate *float64        `json:"hourly_rate,omitempty"`
}

// EditUser patches a user's profile.
func (s *Store) EditUser(ctx context.Context, userID string, upd UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUserLocked(userID)
	if u == nil {
		return ErrNotFound
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Company != nil {
		u.Company = *upd.Company
	}
	if upd.Specialty != nil {
		u.Specialty = *upd.Specialty
	}
	if upd.HourlyRate != nil {
		u.HourlyRate = *upd.HourlyRate
	}

	s.saveUsersLocked(ctx)
	metrics.IncrementStoreMutation(colUsers, "edit")

	s.notifyLocked(model.NotificationEvent{
		Title:        "User Updated",
		Message:      "Profile updated successfully.",
		Type:         model.NotifyInfo,
		Priority:     model.PriorityMedium,
		TargetUserID: userID,
	})

	return nil
}

// DeleteUser removes a user. Tasks assigned to the user are left in place;
// there is no referential integrity across collections.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	s.users = append(s.users[:idx], s.users[idx+1:]...)
	delete(s.inbox, userID)
	s.saveUsersLocked(ctx)
	metrics.IncrementStoreMutation(colUsers, "delete")

	s.logger.Info("user deleted", zap.String("user_id", userID))

	s.notifyLocked(model.NotificationEvent{
		Title:    "User Deleted",
		Message:  "User removed from system.",
		Type:     model.NotifyWarning,
		Priority: model.PriorityHigh,
	})

	return nil
}

type RegisterClientParams struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	Industry        string
	BudgetAllocated float64
	InitialBrief    string
	Password        string
}

// RegisterClient onboards a client record plus its linked portal user.
func (s *Store) RegisterClient(ctx context.Context, p RegisterClientParams) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Name == "" {
		p.Name = "Contact"
	}
	if p.Company == "" {
		p.Company = "New Company"
	}
	if p.Industry == "" {
		p.Industry = "General"
	}
	if p.Password == "" {
		p.Password = "password123"
	}

	hash, err := util.HashPassword(p.Password)
	if err != nil {
		return model.Client{}, err
	}

	client := model.Client{
		ID:              newID("c"),
		Name:            p.Name,
		Company:         p.Company,
		Email:           p.Email,
		Phone:           p.Phone,
		Industry:        p.Industry,
		Status:          model.ClientActive,
		BudgetAllocated: p.BudgetAllocated,
		InitialBrief:    p.InitialBrief,
	}
	s.clients = append(s.clients, client)

	contact := model.User{
		ID:                newID("u_client"),
		Name:              client.Name,
		Email:             client.Email,
		PasswordHash:      hash,
		Role:              model.RoleClient,
		Avatar:            "https://i.pravatar.cc/150?u=" + client.ID,
		Company:           client.Company,
		Specialty:         "Client Contact",
		AssignedClientIDs: []string{client.ID},
		AccessRequests:    []model.AccessRequest{},
	}
	s.users = append(s.users, contact)

	s.recomputeClientStatsLocked()
	s.saveClientsLocked(ctx)
	s.saveUsersLocked(ctx)
	metrics.IncrementStoreMutation(colClients, "register")

	s.logger.Info("client onboarded",
		zap.String("client_id", client.ID),
		zap.String("company", client.Company),
	)

	s.notifyLocked(model.NotificationEvent{
		Title:    "Client Onboarded",
		Message:  client.Company + " added.",
		Type:     model.NotifySuccess,
		Priority: model.PriorityHigh,
	})

	return client, nil
}
