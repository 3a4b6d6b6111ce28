// Package store is the single source of truth for all entity collections.
// Every mutation happens under one mutex, recomputes derived state
// synchronously, fans out notifications, and rewrites the affected
// collections through the persistence shim.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/internal/persist"
)

// Collection names double as persistence keys.
const (
	colUsers    = "users"
	colProjects = "projects"
	colTasks    = "tasks"
	colAssets   = "assets"
	colClients  = "clients"
	colChats    = "chats"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("operation requires admin role")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrAccessNotApproved  = errors.New("impersonation access not approved")
)

type Store struct {
	logger  *zap.Logger
	persist persist.Collections

	mu       sync.Mutex
	users    []model.User
	projects []model.Project
	tasks    []model.Task
	assets   []model.Asset
	clients  []model.Client
	chats    []model.ChatSession

	// Ephemeral state: never persisted, lost on restart.
	inbox    map[string][]model.Notification
	prefs    map[string]model.UserPreferences
	settings model.SystemSettings
}

func New(p persist.Collections, logger *zap.Logger) *Store {
	return &Store{
		logger:  logger,
		persist: p,
		inbox:   make(map[string][]model.Notification),
		prefs:   make(map[string]model.UserPreferences),
		settings: model.SystemSettings{
			General: model.GeneralSettings{CompanyName: "Brandistry CRM"},
		},
	}
}

// Load populates every collection from the persistence shim, falling back to
// the bundled seed dataset for any collection that is missing or unreadable.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored []storedUser
	if s.persist.Load(ctx, colUsers, &stored) {
		s.users = make([]model.User, len(stored))
		for i, su := range stored {
			u := su.User
			u.PasswordHash = su.PasswordHash
			s.users[i] = u
		}
	} else {
		s.users = seedUsers()
	}
	if !s.persist.Load(ctx, colProjects, &s.projects) {
		s.projects = seedProjects()
	}
	if !s.persist.Load(ctx, colTasks, &s.tasks) {
		s.tasks = seedTasks()
	}
	if !s.persist.Load(ctx, colAssets, &s.assets) {
		s.assets = seedAssets()
	}
	if !s.persist.Load(ctx, colClients, &s.clients) {
		s.clients = seedClients()
	}
	if !s.persist.Load(ctx, colChats, &s.chats) {
		s.chats = seedChats()
	}

	s.recomputeClientStatsLocked()

	s.logger.Info("store loaded",
		zap.Int("users", len(s.users)),
		zap.Int("projects", len(s.projects)),
		zap.Int("tasks", len(s.tasks)),
		zap.Int("assets", len(s.assets)),
		zap.Int("clients", len(s.clients)),
		zap.Int("chats", len(s.chats)),
	)
}

func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// --- snapshot accessors ---

func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Project(nil), s.projects...)
}

func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) Assets() []model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Asset(nil), s.assets...)
}

func (s *Store) Clients() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Client(nil), s.clients...)
}

func (s *Store) User(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUserLocked(id)
	if u == nil {
		return model.User{}, ErrNotFound
	}
	return *u, nil
}

func (s *Store) UserByEmail(email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i], nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *Store) Project(id string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(id)
	if p == nil {
		return model.Project{}, ErrNotFound
	}
	return *p, nil
}

func (s *Store) Task(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (s *Store) Asset(id string) (model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			return s.assets[i], nil
		}
	}
	return model.Asset{}, ErrNotFound
}

// --- locked lookups ---

func (s *Store) findUserLocked(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findProjectLocked(id string) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

func (s *Store) findSessionLocked(id string) *model.ChatSession {
	for i := range s.chats {
		if s.chats[i].ID == id {
			return &s.chats[i]
		}
	}
	return nil
}

// --- persistence helpers (called with the lock held) ---

// storedUser is the persistence shape for a user. The API shape strips the
// password hash from JSON, so persisting model.User directly would lose every
// hash on the first save; the explicit field here keeps the round-trip whole.
type storedUser struct {
	model.User
	PasswordHash string `json:"password_hash"`
}

func (s *Store) saveUsersLocked(ctx context.Context) {
	stored := make([]storedUser, len(s.users))
	for i, u := range s.users {
		stored[i] = storedUser{User: u, PasswordHash: u.PasswordHash}
	}
	s.persist.Save(ctx, colUsers, stored)
}
func (s *Store) saveProjectsLocked(ctx context.Context) { s.persist.Save(ctx, colProjects, s.projects) }
func (s *Store) saveTasksLocked(ctx context.Context)    { s.persist.Save(ctx, colTasks, s.tasks) }
func (s *Store) saveAssetsLocked(ctx context.Context)   { s.persist.Save(ctx, colAssets, s.assets) }
func (s *Store) saveClientsLocked(ctx context.Context)  { s.persist.Save(ctx, colClients, s.clients) }
func (s *Store) saveChatsLocked(ctx context.Context)    { s.persist.Save(ctx, colChats, s.chats) }
