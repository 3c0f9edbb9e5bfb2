// internal/repository/user_repository.go
package repository

import (
    "encoding/json"
    "log"
    "strings"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/seed"
    "github.com/nxthub/influencer-hub-backend/internal/store"
)

const usersKey = "nxthub_users_data"

// UserRepositoryInterface defines methods used by the login service
type UserRepositoryInterface interface {
    List() ([]model.User, error)
    FindByEmail(email string) (*model.User, error)
}

// UserRepository reads the seeded user collection. Users are immutable, so
// there is no replace operation here.
type UserRepository struct {
    Store store.KV
}

// List returns the persisted users, seeding the store on first access. A
// blob that fails to parse is treated as absent and reseeded.
func (r *UserRepository) List() ([]model.User, error) {
    blob, ok, err := r.Store.Get(usersKey)
    if err != nil {
        return nil, err
    }
    if ok {
        var users []model.User
        if err := json.Unmarshal(blob, &users); err == nil {
            return users, nil
        }
        log.Println("⚠️ corrupt users blob, reseeding")
    }

    users := seed.Users()
    data, err := json.Marshal(users)
    if err != nil {
        return nil, err
    }
    if err := r.Store.Set(usersKey, data); err != nil {
        return nil, err
    }
    return users, nil
}

// FindByEmail matches case-insensitively. Returns nil, nil when no user
// matches.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
    users, err := r.List()
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

var _ UserRepositoryInterface = (*UserRepository)(nil)
