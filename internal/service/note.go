package service

import (
	"context"
	"fmt"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/repository"
)

type NoteService struct {
	repo      repository.Repository
	noteLimit int
}

func NewNoteService(repo repository.Repository, noteLimit int) *NoteService {
	return &NoteService{
		repo:      repo,
		noteLimit: noteLimit,
	}
}

func (s *NoteService) List(ctx context.Context, tenant string) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note().ListByTenant(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	noteResponses := make([]dto.NoteResponse, len(notes))
	for i := range notes {
		noteResponses[i] = dto.FromNote(&notes[i])
	}
	return noteResponses, nil
}

// Create inserts a note into the tenant's schema. Members are capped at the
// Free Plan note ceiling; admins are exempt. That asymmetry is the plan-tier
// rule, not an oversight.
func (s *NoteService) Create(ctx context.Context, tenant string, role domain.Role, req dto.CreateNoteRequest) (dto.NoteResponse, error) {
	if role == domain.RoleMember {
		count, err := s.repo.Note().CountByTenant(ctx, tenant)
		if err != nil {
			return dto.NoteResponse{}, fmt.Errorf("failed to count notes: %w", err)
		}
		if count >= int64(s.noteLimit) {
			return dto.NoteResponse{}, ErrNoteQuotaExceeded
		}
	}

	note := &domain.Note{Content: req.Content}
	if err := s.repo.Note().Create(ctx, tenant, note); err != nil {
		return dto.NoteResponse{}, fmt.Errorf("failed to create note: %w", err)
	}

	return dto.FromNote(note), nil
}
