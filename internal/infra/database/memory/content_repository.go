package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type NewsRepository struct {
	mu    sync.RWMutex
	items map[string]entity.NewsItem
}

func NewNewsRepository() *NewsRepository {
	return &NewsRepository{items: make(map[string]entity.NewsItem)}
}

func (r *NewsRepository) Create(ctx context.Context, item *entity.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.Slug == item.Slug {
			return fmt.Errorf("%w: news slug %s", entity.ErrDuplicateKey, item.Slug)
		}
	}
	r.items[item.ID] = *item
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, item *entity.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return entity.ErrNotFound
	}
	for id, it := range r.items {
		if id != item.ID && it.Slug == item.Slug {
			return fmt.Errorf("%w: news slug %s", entity.ErrDuplicateKey, item.Slug)
		}
	}
	r.items[item.ID] = *item
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *NewsRepository) FindAll(ctx context.Context, publishedOnly bool) ([]entity.NewsItem, error) {
	r.mu.RLock()
	out := make([]entity.NewsItem, 0, len(r.items))
	for _, it := range r.items {
		if publishedOnly && !it.Published {
			continue
		}
		out = append(out, it)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*entity.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &it, nil
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Slug == slug && (it.Published || !publishedOnly) {
			found := it
			return &found, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *NewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, it := range r.items {
		if it.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type ResultSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.ResultSession
}

func NewResultSessionRepository() *ResultSessionRepository {
	return &ResultSessionRepository{sessions: make(map[string]entity.ResultSession)}
}

func (r *ResultSessionRepository) Create(ctx context.Context, s *entity.ResultSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.sessions {
		if it.Slug == s.Slug {
			return fmt.Errorf("%w: result slug %s", entity.ErrDuplicateKey, s.Slug)
		}
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *ResultSessionRepository) Update(ctx context.Context, s *entity.ResultSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; !ok {
		return entity.ErrNotFound
	}
	for id, it := range r.sessions {
		if id != s.ID && it.Slug == s.Slug {
			return fmt.Errorf("%w: result slug %s", entity.ErrDuplicateKey, s.Slug)
		}
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *ResultSessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *ResultSessionRepository) FindAll(ctx context.Context) ([]entity.ResultSession, error) {
	r.mu.RLock()
	out := make([]entity.ResultSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ResultSessionRepository) FindByID(ctx context.Context, id string) (*entity.ResultSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &s, nil
}

func (r *ResultSessionRepository) FindBySlug(ctx context.Context, slug string) (*entity.ResultSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.Slug == slug {
			found := s
			return &found, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *ResultSessionRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, s := range r.sessions {
		if s.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}
