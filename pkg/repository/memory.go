package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements ResultRepository with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	runs    map[types.RunID]*model.Run
	results map[types.RunID]map[types.AccountID]*model.TutorResult
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.ResultRepository {
	return &Memory{
		runs:    make(map[types.RunID]*model.Run),
		results: make(map[types.RunID]map[types.AccountID]*model.TutorResult),
	}
}

// PutRun saves a run
func (m *Memory) PutRun(ctx context.Context, run *model.Run) error {
	if run == nil {
		return goerr.New("run is nil")
	}
	if err := run.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid run")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	runCopy := *run
	m.runs[run.ID] = &runCopy
	return nil
}

// GetRun retrieves a run by ID
func (m *Memory) GetRun(ctx context.Context, id types.RunID) (*model.Run, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	run, exists := m.runs[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRunNotFound, "failed to get run", goerr.V("run_id", id))
	}

	runCopy := *run
	return &runCopy, nil
}

// PutTutorResult saves or replaces the result for one tutor in a run
func (m *Memory) PutTutorResult(ctx context.Context, result *model.TutorResult) error {
	if result == nil {
		return goerr.New("result is nil")
	}
	if err := result.RunID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid result")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.results[result.RunID] == nil {
		m.results[result.RunID] = make(map[types.AccountID]*model.TutorResult)
	}
	resultCopy := *result
	m.results[result.RunID][result.TutorID] = &resultCopy
	return nil
}

// ListTutorResults lists the results of a run ordered by check time
func (m *Memory) ListTutorResults(ctx context.Context, id types.RunID) ([]*model.TutorResult, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*model.TutorResult, 0, len(m.results[id]))
	for _, r := range m.results[id] {
		resultCopy := *r
		results = append(results, &resultCopy)
	}
	sortResults(results)
	return results, nil
}

// Close releases nothing for the memory store
func (m *Memory) Close() error {
	return nil
}

func sortResults(results []*model.TutorResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CheckedAt.Equal(results[j].CheckedAt) {
			return results[i].TutorName < results[j].TutorName
		}
		return results[i].CheckedAt.Before(results[j].CheckedAt)
	})
}
