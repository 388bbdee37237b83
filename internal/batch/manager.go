// Package batch tracks multi-calculation jobs: Gharqa (simultaneous
// deaths, each computed independently) and Munasakhot (a chain of
// deaths computed level by level). Both variants fan a single request
// out into several faraid.Calculate calls; this package gives each
// fan-out a case ID so a client can create it, let it run, and fetch
// the combined result later.
package batch

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/waris/faraid-engine/pkg/models"
)

// Kind distinguishes the two batch-shaped variants.
type Kind string

const (
	KindGharqa     Kind = "gharqa"
	KindMunasakhot Kind = "munasakhot"
)

// Job is one batch calculation case: a kind, its input, and — once
// run — its per-item results.
type Job struct {
	ID        string                     `json:"id"`
	Kind      Kind                       `json:"kind"`
	Status    string                     `json:"status"` // "pending"/"completed"/"failed"
	Error     string                     `json:"error,omitempty"`
	Gharqa    []models.DeceasedCase      `json:"gharqa,omitempty"`
	Munasakhot []models.MunasakhotLevel `json:"munasakhot,omitempty"`
	Results   []models.CalculationResult `json:"results,omitempty"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// Manager holds in-flight and completed batch jobs in memory, keyed by
// case ID. It is the single process-local source of truth for case
// lookups between the create and fetch requests of a batch's lifecycle.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewManager creates an empty batch-job store.
func NewManager() *Manager {
	return &Manager{jobs: make(map[string]*Job)}
}

// NewGharqaJob registers a pending Gharqa job and returns it; its ID
// is the case ID.
func (m *Manager) NewGharqaJob(cases []models.DeceasedCase) *Job {
	now := time.Now()
	job := &Job{
		ID:        uuid.NewString(),
		Kind:      KindGharqa,
		Status:    "pending",
		Gharqa:    cases,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// NewMunasakhotJob registers a pending Munasakhot job and returns it;
// its ID is the case ID.
func (m *Manager) NewMunasakhotJob(levels []models.MunasakhotLevel) *Job {
	now := time.Now()
	job := &Job{
		ID:         uuid.NewString(),
		Kind:       KindMunasakhot,
		Status:     "pending",
		Munasakhot: levels,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// Complete records a job's results and marks it completed.
func (m *Manager) Complete(id string, results []models.CalculationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return
	}
	job.Results = results
	job.Status = "completed"
	job.UpdatedAt = time.Now()
}

// Fail records a job's failure reason.
func (m *Manager) Fail(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return
	}
	job.Status = "failed"
	job.Error = err.Error()
	job.UpdatedAt = time.Now()
}

// Get retrieves a job by case ID.
func (m *Manager) Get(id string) *Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.jobs[id]
}
