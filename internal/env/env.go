// Package env abstracts environment variable access so that configuration
// and logging can be tested without touching the process environment.
//
// Production code accepts a Reader and is handed an *OSReader; tests use the
// generated mock in the mocks sub-package:
//
//	ctrl := gomock.NewController(t)
//	r := mocks.NewMockReader(ctrl)
//	r.EXPECT().Getenv("SKILLCAT_SOURCE").Return("builtin:")
package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader is a Reader backed by a fixed map, used when a command wants to
// evaluate overrides against an explicit set of values.
type MapReader map[string]string

// Getenv returns the mapped value or "".
func (m MapReader) Getenv(key string) string {
	return m[key]
}
