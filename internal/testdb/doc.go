// Package testdb provides utilities specifically for database testing.
//
// The helpers connect to the PostgreSQL instance named by DATABASE_URL (or
// TASKS_TEST_DB_URL), apply the embedded migrations once, and run each test
// inside a transaction that is rolled back afterwards. They are compiled only
// with the integration build tag.
package testdb
