// Package sqlite provides an embedded, file- or memory-backed implementation
// of store.TaskStore built on GORM and the go-sqlite3 driver. It is used for
// local development and for running the HTTP stack in tests without a
// PostgreSQL server.
package sqlite
