package jobs

import "fmt"

// Manager coordinates the agent's scheduled jobs.
type Manager struct {
	refresh *RefreshJob
}

// NewManager creates a manager owning all background jobs.
func NewManager(refresh *RefreshJob) *Manager {
	return &Manager{refresh: refresh}
}

// StartAll starts every job; on failure nothing is left running.
func (m *Manager) StartAll() error {
	if err := m.refresh.Start(); err != nil {
		return fmt.Errorf("start refresh job: %w", err)
	}
	return nil
}

// StopAll stops every job.
func (m *Manager) StopAll() {
	m.refresh.Stop()
}
