package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

type UserRepository interface {
	Load() ([]models.User, error)
	Save(users []models.User) error
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

// fileUserRepo stores the whole user collection in one JSON file, read in
// full and rewritten in full on every mutation. The mutex serializes every
// load-modify-save cycle, so two racing signups cannot both pass the
// conflict check.
type fileUserRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileUserRepo(path string) UserRepository {
	return &fileUserRepo{path: path}
}

func (r *fileUserRepo) Load() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *fileUserRepo) Save(users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(users)
}

func (r *fileUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Create appends the user unless an account with the same email already
// exists (case-insensitive). Assigns the ID if unset.
func (r *fileUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) {
			return apperrors.ErrAccountExists
		}
	}
	if user.ID == "" {
		user.ID = "u_" + uuid.NewString()
	}
	users = append(users, *user)
	return r.save(users)
}

// load must run with the mutex held. A missing file is bootstrapped to an
// empty collection.
func (r *fileUserRepo) load() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		if err := r.save([]models.User{}); err != nil {
			return nil, err
		}
		return []models.User{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return users, nil
}

// save must run with the mutex held.
func (r *fileUserRepo) save(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return nil
}
