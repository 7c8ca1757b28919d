package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"calendarbot/internal/domain"
)

// A fresh users file is seeded with this placeholder administrator so the
// deployment has a first admin; replace it out of band with a real identity.
const (
	bootstrapAdminID       = "1234567"
	bootstrapAdminUsername = "admin"
)

type usersDocument struct {
	Users map[string]*domain.User `json:"users"`
}

type userRepository struct {
	path string
	mu   sync.Mutex
}

// NewUserRepository returns a UserRepository backed by the JSON document at
// path. A missing or malformed file self-heals on first use: the store is
// recreated with the bootstrap admin seeded.
func NewUserRepository(path string) domain.UserRepository {
	return &userRepository{path: path}
}

func (r *userRepository) load() *usersDocument {
	data, err := os.ReadFile(r.path)
	if err == nil {
		doc := &usersDocument{}
		if err := json.Unmarshal(data, doc); err == nil && doc.Users != nil {
			return doc
		}
	}
	doc := &usersDocument{Users: map[string]*domain.User{
		bootstrapAdminID: {Role: domain.RoleAdmin, Username: bootstrapAdminUsername},
	}}
	// Best-effort self-heal; the seeded document still serves in memory when
	// the write fails.
	_ = r.save(doc)
	return doc
}

func (r *userRepository) save(doc *usersDocument) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, data)
}

func (r *userRepository) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.load()
	u, ok := doc.Users[id.String()]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *u
	found.ID = id
	return &found, nil
}

func (r *userRepository) Register(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.load()
	if _, ok := doc.Users[user.ID.String()]; ok {
		return nil
	}
	stored := *user
	doc.Users[user.ID.String()] = &stored
	return r.save(doc)
}
