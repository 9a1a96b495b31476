package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
	"github.com/xavierca1/admissions-api/internal/infra/database/memory"
)

func newTestGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "test_leads_by_status"}, []string{"status"})
}

func TestLeadGaugeRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLeadRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, entity.NewLead("S", "F", "C", "S", "1", "a@b.com", "5", "", time.Now())))
	}
	admitted := entity.NewLead("S", "F", "C", "S", "1", "a@b.com", "5", "", time.Now())
	require.NoError(t, repo.Create(ctx, admitted))
	_, err := repo.UpdateStatus(ctx, admitted.ID, entity.LeadStatusAdmitted)
	require.NoError(t, err)

	w := NewLeadGaugeWorker(repo, time.Minute, zap.NewNop())
	w.gauge = newTestGauge()
	w.refresh(ctx)

	assert.Equal(t, 3.0, testutil.ToFloat64(w.gauge.WithLabelValues("New")))
	assert.Equal(t, 1.0, testutil.ToFloat64(w.gauge.WithLabelValues("Admitted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(w.gauge.WithLabelValues("Closed")))
}

type failingRepo struct {
	entity.LeadRepositoryInterface
}

func (failingRepo) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	return nil, errors.New("store down")
}

// countOnlyRepo fails the test if the worker reads whole documents.
type countOnlyRepo struct {
	entity.LeadRepositoryInterface
	t      *testing.T
	counts map[entity.LeadStatus]int64
}

func (r countOnlyRepo) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	return r.counts, nil
}

func (r countOnlyRepo) FindByDateRange(ctx context.Context, from, to *time.Time) ([]entity.Lead, error) {
	r.t.Fatal("gauge refresh loaded lead documents")
	return nil, nil
}

func (r countOnlyRepo) FindAll(ctx context.Context) ([]entity.Lead, error) {
	r.t.Fatal("gauge refresh loaded lead documents")
	return nil, nil
}

func TestLeadGaugeRefreshUsesStatusCounts(t *testing.T) {
	repo := countOnlyRepo{t: t, counts: map[entity.LeadStatus]int64{entity.LeadStatusContacted: 4}}
	w := NewLeadGaugeWorker(repo, time.Minute, zap.NewNop())
	w.gauge = newTestGauge()

	w.refresh(context.Background())

	assert.Equal(t, 4.0, testutil.ToFloat64(w.gauge.WithLabelValues("Contacted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(w.gauge.WithLabelValues("New")))
}

func TestLeadGaugeRefreshKeepsLastValueOnError(t *testing.T) {
	w := NewLeadGaugeWorker(failingRepo{}, time.Minute, zap.NewNop())
	w.gauge = newTestGauge()
	w.gauge.WithLabelValues("New").Set(7)

	w.refresh(context.Background())

	assert.Equal(t, 7.0, testutil.ToFloat64(w.gauge.WithLabelValues("New")))
}

func TestLeadGaugeWorkerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewLeadGaugeWorker(memory.NewLeadRepository(), time.Hour, zap.NewNop())
	w.gauge = newTestGauge()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
