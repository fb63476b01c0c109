package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/repository"
)

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListByTenant(ctx context.Context, tenant string) ([]domain.Note, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteRepository) CountByTenant(ctx context.Context, tenant string) (int64, error) {
	args := m.Called(ctx, tenant)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, tenant string, note *domain.Note) error {
	args := m.Called(ctx, tenant, note)
	return args.Error(0)
}

type mockRepository struct {
	note *MockNoteRepository
}

func (r *mockRepository) Note() repository.NoteRepository {
	return r.note
}

type NoteServiceTestSuite struct {
	suite.Suite
	mockNote *MockNoteRepository
	service  *NoteService
}

func (s *NoteServiceTestSuite) SetupTest() {
	s.mockNote = new(MockNoteRepository)
	s.service = NewNoteService(&mockRepository{note: s.mockNote}, 3)
}

func TestNoteService(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}

func (s *NoteServiceTestSuite) TestList_Success() {
	ctx := context.Background()
	notes := []domain.Note{
		{ID: "note1", Content: "first"},
		{ID: "note2", Content: "second"},
	}

	s.mockNote.On("ListByTenant", ctx, "acme").Return(notes, nil)

	resp, err := s.service.List(ctx, "acme")

	s.NoError(err)
	s.Len(resp, 2)
	s.Equal("note1", resp[0].ID)
	s.Equal("first", resp[0].Content)
	s.Equal("note2", resp[1].ID)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestList_RepositoryError() {
	ctx := context.Background()

	s.mockNote.On("ListByTenant", ctx, "acme").Return(nil, errors.New("connection refused"))

	_, err := s.service.List(ctx, "acme")

	s.Error(err)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_MemberBelowQuota() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Content: "a note"}

	s.mockNote.On("CountByTenant", ctx, "acme").Return(int64(2), nil)
	s.mockNote.On("Create", ctx, "acme", mock.AnythingOfType("*domain.Note")).Return(nil)

	resp, err := s.service.Create(ctx, "acme", domain.RoleMember, req)

	s.NoError(err)
	s.Equal("a note", resp.Content)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_MemberAtQuota() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Content: "one too many"}

	s.mockNote.On("CountByTenant", ctx, "acme").Return(int64(3), nil)

	_, err := s.service.Create(ctx, "acme", domain.RoleMember, req)

	s.ErrorIs(err, ErrNoteQuotaExceeded)
	s.mockNote.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_AdminExemptFromQuota() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Content: "admin note"}

	// No count expectation: the ceiling never applies to admins.
	s.mockNote.On("Create", ctx, "acme", mock.AnythingOfType("*domain.Note")).Return(nil)

	resp, err := s.service.Create(ctx, "acme", domain.RoleAdmin, req)

	s.NoError(err)
	s.Equal("admin note", resp.Content)
	s.mockNote.AssertNotCalled(s.T(), "CountByTenant", mock.Anything, mock.Anything)
	s.mockNote.AssertExpectations(s.T())
}

func (s *NoteServiceTestSuite) TestCreate_CountError() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Content: "a note"}

	s.mockNote.On("CountByTenant", ctx, "acme").Return(int64(0), errors.New("connection refused"))

	_, err := s.service.Create(ctx, "acme", domain.RoleMember, req)

	s.Error(err)
	s.NotErrorIs(err, ErrNoteQuotaExceeded)
	s.mockNote.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *NoteServiceTestSuite) TestCreate_RepositoryError() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Content: "a note"}

	s.mockNote.On("CountByTenant", ctx, "acme").Return(int64(0), nil)
	s.mockNote.On("Create", ctx, "acme", mock.AnythingOfType("*domain.Note")).Return(errors.New("insert failed"))

	_, err := s.service.Create(ctx, "acme", domain.RoleMember, req)

	s.Error(err)
	s.mockNote.AssertExpectations(s.T())
}
