// Package mocks provides mock implementations of the application's
// interfaces for use in tests. Each mock exposes function fields that
// tests can override to control behavior per call.
package mocks
