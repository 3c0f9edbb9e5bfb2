// internal/service/login_service.go
package service

import (
    "context"
    "time"

    "github.com/nxthub/influencer-hub-backend/internal/auth"
    appErrors "github.com/nxthub/influencer-hub-backend/internal/errors"
    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/repository"
)

// LoginService resolves an email to a session. Presence of the email is the
// whole credential check; this is a demo-grade login by design.
type LoginService struct {
    UserRepo repository.UserRepositoryInterface
    // Delay simulates the original network round trip. Zero in tests.
    Delay time.Duration
}

type LoginResult struct {
    Session auth.Session `json:"session"`
    User    model.User   `json:"user"`
}

// Resolve looks the user up by case-insensitive email match. It fails with
// ErrUserNotFound when no user matches, and with ErrInvalidConfiguration
// when the matched user is a manager without a department.
func (s *LoginService) Resolve(ctx context.Context, email string) (*LoginResult, error) {
    if s.Delay > 0 {
        timer := time.NewTimer(s.Delay)
        defer timer.Stop()
        select {
        case <-timer.C:
        case <-ctx.Done():
            return nil, ctx.Err()
        }
    }

    user, err := s.UserRepo.FindByEmail(email)
    if err != nil {
        return nil, err
    }
    if user == nil {
        return nil, appErrors.NewUserNotFound(email)
    }

    if user.Role == model.RoleManager && user.Department == "" {
        return nil, appErrors.NewInvalidConfiguration(user.Email)
    }

    return &LoginResult{
        Session: auth.Session{
            Email:      user.Email,
            Role:       user.Role,
            Department: user.Department,
        },
        User: *user,
    }, nil
}
