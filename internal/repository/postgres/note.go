package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/repository"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// searchPathStmt builds the schema switch statement for a tenant. The slug is
// validated against the schema identifier pattern and double-quoted; request
// bodies and path parameters never reach this statement directly, the tenant
// always comes from a verified claim.
func searchPathStmt(tenant string) (string, error) {
	if !domain.ValidTenantSlug(tenant) {
		return "", repository.ErrInvalidTenantSlug
	}
	return fmt.Sprintf(`SET LOCAL search_path TO %q, public`, tenant), nil
}

// withTenantSchema runs fn inside a transaction whose search path is switched
// to the tenant's schema. SET LOCAL scopes the switch to the transaction, so
// the pooled connection is released with its default search path on every
// exit path, success and failure alike.
func (r *NoteRepository) withTenantSchema(ctx context.Context, tenant string, fn func(tx *gorm.DB) error) error {
	stmt, err := searchPathStmt(tenant)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to set search path: %w", err)
		}
		return fn(tx)
	})
}

func (r *NoteRepository) ListByTenant(ctx context.Context, tenant string) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.withTenantSchema(ctx, tenant, func(tx *gorm.DB) error {
		return tx.Order("created_at").Find(&notes).Error
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) CountByTenant(ctx context.Context, tenant string) (int64, error) {
	var count int64
	err := r.withTenantSchema(ctx, tenant, func(tx *gorm.DB) error {
		return tx.Model(&domain.Note{}).Count(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepository) Create(ctx context.Context, tenant string, note *domain.Note) error {
	return r.withTenantSchema(ctx, tenant, func(tx *gorm.DB) error {
		return tx.Create(note).Error
	})
}
