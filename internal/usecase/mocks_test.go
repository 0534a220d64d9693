package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"outreach-backend/internal/domain"
	"outreach-backend/pkg/email"
	"outreach-backend/pkg/logger"
	"outreach-backend/pkg/slack"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByToken(ctx context.Context, token string) (*domain.Candidate, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) InsertAndSetStatus(ctx context.Context, resp *domain.CandidateResponse, status domain.Status) error {
	return m.Called(ctx, resp, status).Error(0)
}

func (m *MockResponseRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.CandidateResponse, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateResponse), args.Error(1)
}

func (m *MockResponseRepo) ListRecent(ctx context.Context, limit int) ([]domain.CandidateResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateResponse), args.Error(1)
}

type MockPageViewRepo struct {
	mock.Mock
}

func (m *MockPageViewRepo) InsertFirstView(ctx context.Context, candidateID string, viewedAt time.Time) (bool, error) {
	args := m.Called(ctx, candidateID, viewedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageViewRepo) GetByCandidate(ctx context.Context, candidateID string) (*domain.CandidatePageView, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidatePageView), args.Error(1)
}

type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Insert(ctx context.Context, note *domain.CandidateNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.CandidateNote, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateNote), args.Error(1)
}

func (m *MockNoteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Insert(ctx context.Context, entry *domain.ActivityLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityRepo) ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

// Mock Notifiers

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendAcceptanceNotification(data email.AcceptanceEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockEmailSender) SendDeclineNotification(data email.DeclineEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockEmailSender) SendInquiryNotification(data email.InquiryEmailData) error {
	return m.Called(data).Error(0)
}

type MockChatNotifier struct {
	mock.Mock
}

func (m *MockChatNotifier) Send(ctx context.Context, message string, blocks ...slack.Block) error {
	return m.Called(ctx, message, blocks).Error(0)
}
