// internal/controller/respond.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/nxthub/influencer-hub-backend/internal/auth"
    appErrors "github.com/nxthub/influencer-hub-backend/internal/errors"
)

// sessionFromRequest rebuilds the session from explicit request headers. An
// empty role yields a guest session; the services reject guest mutations, so
// the HTTP layer never has to.
func sessionFromRequest(r *http.Request) auth.Session {
    return auth.Session{
        Email:      r.Header.Get("X-User-Email"),
        Role:       r.Header.Get("X-User-Role"),
        Department: r.Header.Get("X-User-Department"),
    }
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(payload)
}

// writeError maps domain error types onto HTTP statuses. Everything
// unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
    var (
        validation     *appErrors.ErrValidation
        unauthorized   *appErrors.ErrUnauthorized
        userNotFound   *appErrors.ErrUserNotFound
        badConfig      *appErrors.ErrInvalidConfiguration
        completed      *appErrors.ErrAlreadyCompleted
        campaignMiss   *appErrors.ErrCampaignNotFound
        influencerMiss *appErrors.ErrInfluencerNotFound
    )

    status := http.StatusInternalServerError
    switch {
    case errors.As(err, &validation):
        status = http.StatusBadRequest
    case errors.As(err, &unauthorized):
        status = http.StatusForbidden
    case errors.As(err, &userNotFound):
        status = http.StatusNotFound
    case errors.As(err, &badConfig):
        status = http.StatusUnprocessableEntity
    case errors.As(err, &completed):
        status = http.StatusConflict
    case errors.As(err, &campaignMiss), errors.As(err, &influencerMiss):
        status = http.StatusNotFound
    }

    writeJSON(w, status, map[string]string{"error": err.Error()})
}
