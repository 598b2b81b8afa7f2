// Package store defines the data persistence interfaces for the
// application's entities, together with the shared error taxonomy and
// transaction helpers that concrete implementations rely on.
package store
