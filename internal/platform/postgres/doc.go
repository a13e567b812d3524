// Package postgres provides the PostgreSQL implementation of store.TaskStore,
// together with the error mapping and goose migrations it depends on. Stores
// accept a store.DBTX so they can run on the pool or inside a transaction.
package postgres
