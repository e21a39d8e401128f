package middleware

import (
	"context"
	"net/http"

	"energy-tracker/app/session"
	"energy-tracker/global"
)

type ctxKey int

const SnapshotKey ctxKey = 1

// CookieName carries the opaque session token. The server never trusts any
// identity field in a request body; this cookie is the only credential.
const CookieName = "session_token"

const unauthorizedBody = `{"status":"error","message":"Unauthorized"}`

type Auth struct{ Sessions session.Store }

func (a *Auth) resolve(r *http.Request) *session.Snapshot {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	snap, ok, err := a.Sessions.Resolve(r.Context(), c.Value)
	if err != nil {
		global.Logger.Error().Err(err).Msg("session resolve failed")
		return nil
	}
	if !ok {
		return nil
	}
	return &snap
}

// deny writes the one unauthorized signal. Anonymous, expired and wrong-role
// callers all receive the same status and body so the response leaks nothing
// about which check failed.
func deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}

// WithSession attaches the caller's snapshot to the context when a valid
// session cookie is present, and passes anonymous callers through untouched.
func (a *Auth) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if snap := a.resolve(r); snap != nil {
			r = r.WithContext(context.WithValue(r.Context(), SnapshotKey, snap))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := a.resolve(r)
		if snap == nil {
			deny(w)
			return
		}
		ctx := context.WithValue(r.Context(), SnapshotKey, snap)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := a.resolve(r)
		if snap == nil || !snap.Role.IsAdmin() {
			deny(w)
			return
		}
		ctx := context.WithValue(r.Context(), SnapshotKey, snap)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
