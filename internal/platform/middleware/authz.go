// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

package middleware

import (
	"context"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// # Access Control

// AdminChecker reports whether an email is on the admin allow-list.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Authenticate verifies the Bearer ID token on every request and stores the
// decoded token in the context. Requests without a valid token proceed
// unauthenticated; RequireAdmin decides whether that matters.
func Authenticate(client *fbauth.Client) func(http.Handler) http.Handler {
	return firebaseauth.NewMiddleware(client)
}

// RequireAdmin rejects requests whose authenticated email is not on the
// allow-list. It must run after [Authenticate].
func RequireAdmin(gate AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Pull the verified email out of the decoded token
			email := TokenEmail(request.Context())
			if email == "" {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			// 2. Check the allow-list
			allowed, err := gate.IsAdmin(request.Context(), email)
			if err != nil {
				writeError(writer, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
				return
			}

			if !allowed {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Admin access required")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// TokenEmail extracts the email identity from the decoded Firebase token in
// the context. Returns "" when the request is unauthenticated or the token
// carries no email identity.
func TokenEmail(ctx context.Context) string {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil {
		return ""
	}

	if id, ok := tok.Firebase.Identities["email"]; ok {
		if idAny, ok := id.([]any); ok && len(idAny) > 0 {
			if email, ok := idAny[0].(string); ok {
				return email
			}
		}
	}

	return ""
}
