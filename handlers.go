package main

import (
	"encoding/json"
	"net/http"

	"github.com/example/filmly/internal/validator"
)

// decodeBody reads a JSON object into dst. A missing or malformed body
// leaves dst untouched, so every field then fails its own validation and the
// client gets a 400 from the handler rather than from here.
func (a *App) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) {
	if r.Body == nil {
		return
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		a.logger.WithError(err).WithFields(requestFields(r)).Debug("request body not decoded")
	}
}

func (a *App) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleLogin accepts any well-formed email with any non-blank password.
// There is no user store behind it.
func (a *App) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    interface{} `json:"email"`
		Password interface{} `json:"password"`
	}
	a.decodeBody(w, r, &in)

	email := validator.NormalizeEmail(in.Email)
	a.logger.WithField("email", email).Info("authentication attempt")

	if !validator.IsValidEmail(email) || !validator.IsValidPassword(in.Password) {
		badRequest(w, "Email или пароль указаны неверно")
		return
	}

	access, err := a.Tokens.Issue(email)
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accessToken": access,
		"tokenType":   "Bearer",
		"expiresIn":   a.Tokens.ExpiresIn(),
	})
}

func (a *App) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if raw, ok := tokenFromContext(r.Context()); ok {
		a.DB.RevokeToken(raw)
		if claims, ok := claimsFromContext(r.Context()); ok {
			a.logger.WithField("email", claims.Email).Info("token revoked")
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (a *App) HandleGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.DB.Genres())
}
