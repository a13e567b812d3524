// Package store defines the persistence contract for tasks.
// The interface abstracts the underlying storage engine from the service
// layer, so the Postgres and SQLite implementations are interchangeable.
package store
