package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/admissions-api/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.LeadStatus]int64), args.Error(1)
}

func (m *MockLeadRepository) FindByDateRange(ctx context.Context, from, to *time.Time) ([]entity.Lead, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockLeadEventPublisher
type MockLeadEventPublisher struct {
	mock.Mock
}

func (m *MockLeadEventPublisher) PublishLeadSubmitted(ctx context.Context, n entity.LeadNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockNewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, item *entity.NewsItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockNewsRepository) Update(ctx context.Context, item *entity.NewsItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsRepository) FindAll(ctx context.Context, publishedOnly bool) ([]entity.NewsItem, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*entity.NewsItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsItem, error) {
	args := m.Called(ctx, slug, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}
