// internal/controller/auth_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strings"

    "github.com/nxthub/influencer-hub-backend/internal/service"
)

type AuthController struct {
    LoginService *service.LoginService
}

// Login resolves an email to a session. No password is involved; presence of
// the email is the whole check.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Email string `json:"email"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    email := strings.TrimSpace(body.Email)
    if email == "" {
        http.Error(w, "email is required", http.StatusBadRequest)
        return
    }

    result, err := c.LoginService.Resolve(r.Context(), email)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, result)
}
