// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package firebase provides the managed Google Cloud clients the API depends on.

It initializes one Firebase app per process and hands out the two clients the
platform needs: Firestore for the document store and Auth for verifying
Bearer ID tokens. Credentials come from Application Default Credentials, so
nothing secret is ever configured through the environment here.
*/
package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// Clients bundles the per-process Google Cloud clients.
type Clients struct {
	Firestore *firestore.Client
	Auth      *fbauth.Client
}

// NewClients initializes the Firebase app and derives both clients from it.
//
// # Parameters
//   - ctx: Context for client construction.
//   - projectID: The Google Cloud project hosting Firestore and Firebase Auth.
//   - logger: Structured logger for connection events.
//
// The caller owns the Firestore client and must Close it on shutdown.
func NewClients(ctx context.Context, projectID string, logger *slog.Logger) (*Clients, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("firebase: create app: %w", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("firebase: create auth client: %w", err)
	}

	logger.Info("firebase clients connected",
		slog.String("project_id", projectID),
	)

	return &Clients{Firestore: store, Auth: authClient}, nil
}

// Close releases the underlying connections.
func (c *Clients) Close() error {
	if err := c.Firestore.Close(); err != nil {
		return fmt.Errorf("firebase: closing firestore client: %w", err)
	}

	return nil
}
