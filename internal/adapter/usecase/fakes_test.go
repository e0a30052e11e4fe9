package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValidator(t *testing.T) *compliance.Validator {
	t.Helper()
	p, err := compliance.DefaultPolicy()
	require.NoError(t, err)
	v, err := compliance.New(p)
	require.NoError(t, err)
	return v
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

// memArtifacts is an in-memory port.ArtifactRepository.
type memArtifacts struct {
	mu    sync.Mutex
	items map[string]domain.PipelineArtifact
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{items: make(map[string]domain.PipelineArtifact)}
}

func (m *memArtifacts) UpsertArtifact(_ context.Context, runID string, stage domain.Stage, data json.RawMessage) (*domain.PipelineArtifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := runID + "/" + string(stage)
	a := m.items[key]
	a.RunID, a.Stage, a.Data, a.Timestamp = runID, stage, data, time.Now()
	a.Version++
	m.items[key] = a
	return &a, nil
}

func (m *memArtifacts) GetArtifact(_ context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[runID+"/"+string(stage)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (m *memArtifacts) ListArtifacts(_ context.Context, runID string) ([]domain.PipelineArtifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PipelineArtifact
	for _, a := range m.items {
		if a.RunID == runID {
			out = append(out, a)
		}
	}
	return out, nil
}

// memMetrics is an in-memory port.MetricsRepository keyed like the
// metric_snapshots table.
type memMetrics struct {
	mu    sync.Mutex
	snaps map[string]domain.MetricSnapshot
	aggs  map[string]domain.MetricAggregate
}

func newMemMetrics() *memMetrics {
	return &memMetrics{snaps: make(map[string]domain.MetricSnapshot), aggs: make(map[string]domain.MetricAggregate)}
}

func (m *memMetrics) UpsertSnapshots(_ context.Context, rows []domain.MetricSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		m.snaps[r.RunID+"/"+r.Day.Format(time.DateOnly)] = r
	}
	return nil
}

func (m *memMetrics) ListSnapshots(_ context.Context, runID string) ([]domain.MetricSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.MetricSnapshot
	for _, s := range m.snaps {
		if s.RunID == runID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (m *memMetrics) SaveAggregate(_ context.Context, agg domain.MetricAggregate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggs[agg.RunID] = agg
	return nil
}

func (m *memMetrics) GetAggregate(_ context.Context, runID string) (*domain.MetricAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.aggs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &agg, nil
}
