// internal/auth/policy.go
package auth

import (
    "strings"

    "github.com/nxthub/influencer-hub-backend/internal/model"
)

// Pure predicates, evaluated fresh at the moment of mutation. Nothing here
// touches the store or caches a decision on a record.

// CanEditCampaign allows managers to mutate campaigns in their own
// department, compared case-insensitively. Executives are read-only
// observers.
func CanEditCampaign(s Session, c model.Campaign) bool {
    switch s.Role {
    case model.RoleExecutive:
        return false
    case model.RoleManager:
        if s.Department == "" || c.Department == "" {
            return false
        }
        return strings.EqualFold(s.Department, c.Department)
    default:
        return false
    }
}

// CanCreateCampaign allows any authenticated non-executive.
func CanCreateCampaign(s Session) bool {
    if s.IsGuest() || s.Role == model.RoleExecutive {
        return false
    }
    return true
}

// CanDeleteInfluencer requires exact ownership: createdBy must be set and
// equal the session email, case-sensitively. Ownership is never inferred,
// only matched.
func CanDeleteInfluencer(s Session, i model.Influencer) bool {
    if i.CreatedBy == "" || s.Email == "" {
        return false
    }
    return i.CreatedBy == s.Email
}

// CanEditInfluencer is the same ownership check as delete. Editing is a
// record-level permission, not a property of which view the caller is in.
func CanEditInfluencer(s Session, i model.Influencer) bool {
    return CanDeleteInfluencer(s, i)
}
