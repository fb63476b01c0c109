package dto

import (
	"time"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// LoginResponse carries the bearer token plus the tenant and role the token
// was signed for
type LoginResponse struct {
	Token  string `json:"token"`
	Tenant string `json:"tenant" example:"acme"`
	Role   string `json:"role" example:"admin"`
}

// NoteResponse represents a single note in the response
type NoteResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Content   string    `json:"content" example:"remember the milk"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// UpgradeTenantResponse confirms a plan upgrade request
type UpgradeTenantResponse struct {
	Message string `json:"message" example:"Tenant acme has been upgraded to Pro Plan."`
}

func FromNote(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}
