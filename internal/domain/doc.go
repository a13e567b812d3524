// Package domain contains the core task entity and its value types (Status,
// Date). It is independent of any storage engine or delivery mechanism.
package domain
