// internal/errors/errors.go
package appErrors

import "fmt"

// ErrUserNotFound is returned by login when no user matches the email.
type ErrUserNotFound struct {
    Email string
}

func (e *ErrUserNotFound) Error() string {
    return fmt.Sprintf("user with email %s not found", e.Email)
}

func NewUserNotFound(email string) error {
    return &ErrUserNotFound{Email: email}
}

// ErrInvalidConfiguration is returned by login when a manager account has no
// department assigned.
type ErrInvalidConfiguration struct {
    Email string
}

func (e *ErrInvalidConfiguration) Error() string {
    return fmt.Sprintf("manager %s has no department assigned", e.Email)
}

func NewInvalidConfiguration(email string) error {
    return &ErrInvalidConfiguration{Email: email}
}

// ErrUnauthorized means an authorization predicate rejected the operation.
type ErrUnauthorized struct {
    Op     string
    Reason string
}

func (e *ErrUnauthorized) Error() string {
    return fmt.Sprintf("unauthorized: %s: %s", e.Op, e.Reason)
}

func NewUnauthorized(op, reason string) error {
    return &ErrUnauthorized{Op: op, Reason: reason}
}

// ErrValidation is returned when a required field is missing or malformed.
type ErrValidation struct {
    Field   string
    Message string
}

func (e *ErrValidation) Error() string {
    if e.Message != "" {
        return fmt.Sprintf("validation failed: %s", e.Message)
    }
    return fmt.Sprintf("validation failed: field %q is required", e.Field)
}

func NewValidation(field string) error {
    return &ErrValidation{Field: field}
}

func NewValidationMessage(field, message string) error {
    return &ErrValidation{Field: field, Message: message}
}

// ErrAlreadyCompleted guards the terminal campaign state: completing a
// campaign twice fails instead of silently overwriting the record.
type ErrAlreadyCompleted struct {
    CampaignID string
}

func (e *ErrAlreadyCompleted) Error() string {
    return fmt.Sprintf("campaign %s is already completed", e.CampaignID)
}

func NewAlreadyCompleted(id string) error {
    return &ErrAlreadyCompleted{CampaignID: id}
}

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

func NewCampaignNotFound(id string) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

// ErrInfluencerNotFound is a sentinel error
type ErrInfluencerNotFound struct {
    InfluencerID string
}

func (e *ErrInfluencerNotFound) Error() string {
    return fmt.Sprintf("influencer with ID %s not found", e.InfluencerID)
}

func NewInfluencerNotFound(id string) error {
    return &ErrInfluencerNotFound{InfluencerID: id}
}
