// Package store defines the persistence interfaces and the sentinel
// errors shared by their implementations. Concrete stores live under
// internal/platform (postgres, filestore).
package store
