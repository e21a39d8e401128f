package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"energy-tracker/app/dto"
	"energy-tracker/app/middleware"
	"energy-tracker/app/repo"
	"energy-tracker/app/services"
	"energy-tracker/app/session"
	"energy-tracker/global"
)

type AuthController struct {
	Users    *services.UserService
	Sessions session.Store
}

func NewAuthController(users *services.UserService, sessions session.Store) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	err := c.Users.Register(req.Username, req.Email, req.Password, req.Location)
	switch {
	case err == nil:
		writeOK(w, "Registration successful. Please log in.")
	case errors.Is(err, services.ErrEmptyUsername),
		errors.Is(err, services.ErrBadEmail),
		errors.Is(err, services.ErrShortPassword):
		writeError(w, err.Error())
	case errors.Is(err, repo.ErrDuplicateEmail):
		writeError(w, "Email already registered.")
	default:
		global.Logger.Error().Err(err).Msg("registration failed")
		writeError(w, "Registration failed due to server error.")
	}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			global.Logger.Error().Err(err).Msg("login lookup failed")
		}
		// one message for unknown email and wrong password
		writeError(w, "Invalid email or password")
		return
	}
	token, err := c.Sessions.Create(r.Context(), session.Snapshot{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
		Location: u.Location,
		Role:     u.Role,
	})
	if err != nil {
		global.Logger.Error().Err(err).Msg("session create failed")
		writeError(w, "Login failed due to server error.")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, dto.LoginResponse{Status: "ok", Role: string(u.Role), Message: "Login successful"})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSnapshot(r.Context())
	if snap == nil {
		writeJSON(w, dto.MeResponse{LoggedIn: false})
		return
	}
	writeJSON(w, dto.MeResponse{
		LoggedIn: true,
		Role:     string(snap.Role),
		Username: snap.Username,
		Location: snap.Location,
	})
}

// Logout destroys the session if one exists. A second logout in a row finds
// no session and still reports ok.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := c.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
			global.Logger.Error().Err(err).Msg("session destroy failed")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeOK(w, "Logged out")
}
