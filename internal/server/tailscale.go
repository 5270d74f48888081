package server

import (
	"context"
	"net/http"
)

type contextKey int

const userInfoKey contextKey = iota

// UserInfo is the resolved identity of the caller.
type UserInfo struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

// tailscaleIdentity resolves the caller's tailnet identity and stores it in
// the request context. Without a tsnet local client every request carries
// the local dev user.
func (s *Server) tailscaleIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := UserInfo{Login: "local", DisplayName: "Local Dev User"}
		if s.lc != nil {
			if who, err := s.lc.WhoIs(r.Context(), r.RemoteAddr); err == nil && who.UserProfile != nil {
				info = UserInfo{
					Login:       who.UserProfile.LoginName,
					DisplayName: who.UserProfile.DisplayName,
				}
			}
		}
		ctx := context.WithValue(r.Context(), userInfoKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	info, ok := r.Context().Value(userInfoKey).(UserInfo)
	if !ok {
		info = UserInfo{Login: "local", DisplayName: "Local Dev User"}
	}
	writeJSON(w, http.StatusOK, info)
}
