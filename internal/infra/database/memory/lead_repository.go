// Package memory holds process-local stores used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type LeadRepository struct {
	mu    sync.RWMutex
	leads map[string]entity.Lead
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{leads: make(map[string]entity.Lead)}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[lead.ID]; ok {
		return fmt.Errorf("%w: lead %s", entity.ErrDuplicateKey, lead.ID)
	}
	r.leads[lead.ID] = *lead
	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	r.mu.RLock()
	out := make([]entity.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		out = append(out, l)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return &l, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	l.Status = status
	r.leads[id] = l
	return &l, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.leads)), nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[entity.LeadStatus]int64)
	for _, l := range r.leads {
		counts[l.Status]++
	}
	return counts, nil
}

func (r *LeadRepository) FindByDateRange(ctx context.Context, from, to *time.Time) ([]entity.Lead, error) {
	r.mu.RLock()
	out := make([]entity.Lead, 0)
	for _, l := range r.leads {
		if from != nil && l.Date.Before(*from) {
			continue
		}
		if to != nil && l.Date.After(*to) {
			continue
		}
		out = append(out, l)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
