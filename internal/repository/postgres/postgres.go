package postgres

import (
	"gorm.io/gorm"

	"github.com/tuanngd/tenant-notes-api/internal/repository"
)

type postgresRepository struct {
	db       *gorm.DB
	noteRepo repository.NoteRepository
}

func NewPostgresRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{
		db:       db,
		noteRepo: NewNoteRepository(db),
	}
}

func (r *postgresRepository) Note() repository.NoteRepository {
	return r.noteRepo
}
