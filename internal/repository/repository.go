package repository

import (
	"context"
	"errors"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// ErrInvalidTenantSlug is returned when a tenant identifier is not a valid
// schema name. It never reaches a SQL statement.
var ErrInvalidTenantSlug = errors.New("invalid tenant identifier")

//go:generate mockery --name NoteRepository --output ../mocks
type NoteRepository interface {
	ListByTenant(ctx context.Context, tenant string) ([]domain.Note, error)
	CountByTenant(ctx context.Context, tenant string) (int64, error)
	Create(ctx context.Context, tenant string, note *domain.Note) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Note() NoteRepository
}
