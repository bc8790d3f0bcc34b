package domain

import "context"

// TheatreRegistry is the persistence boundary for theatre aggregates, keyed
// by name. Implementations are authoritative: callers re-read the aggregate
// before mutating and write the whole aggregate back afterwards, with no
// caching in between.
type TheatreRegistry interface {
	Create(ctx context.Context, name string) (*Theatre, error)
	Load(ctx context.Context, name string) (*Theatre, error)
	Save(ctx context.Context, theatre *Theatre) error
	Names(ctx context.Context) ([]string, error)
}

// TheatreLocker serializes writers of a single theatre. The registry's
// read-modify-write cycle is not safe for concurrent writers, so every
// mutating operation runs inside WithLock. Readers take no lock.
type TheatreLocker interface {
	WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}
