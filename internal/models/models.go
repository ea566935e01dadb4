// Package models defines the session and project records shared by the
// tracker, the persistence layer and the UI
package models

import "time"

// Session is a timed work session. Timestamps are milliseconds since the
// Unix epoch so that the stored payload stays independent of any time zone.
type Session struct {
	ID        string  `json:"id"`
	ProjectID *string `json:"projectId"`
	// EndTime is nil while the session is in progress
	EndTime *int64 `json:"endTime"`
	// PausedStartTime marks the start of the pause currently open, if any
	PausedStartTime *int64 `json:"pausedStartTime"`
	StartTime       int64  `json:"startTime"`
	// TotalPausedDuration only counts pauses that have been resumed
	TotalPausedDuration int64 `json:"totalPausedDuration"`
	IsPaused            bool  `json:"isPaused"`
}

// Project groups completed sessions.
type Project struct {
	// FinalizedTotalDuration is the frozen aggregate, set only while the
	// project is finalized
	FinalizedTotalDuration *int64 `json:"finalizedTotalDuration,omitempty"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	IsFinalized            bool   `json:"isFinalized"`
}

// Active reports whether the session is still in progress.
func (s *Session) Active() bool {
	return s.EndTime == nil
}

// AssignedTo reports whether the session belongs to the given project.
func (s *Session) AssignedTo(projectID string) bool {
	return s.ProjectID != nil && *s.ProjectID == projectID
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.ProjectID = clonePtr(s.ProjectID)
	c.EndTime = clonePtr(s.EndTime)
	c.PausedStartTime = clonePtr(s.PausedStartTime)

	return &c
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	c := *p
	c.FinalizedTotalDuration = clonePtr(p.FinalizedTotalDuration)

	return &c
}

// Millis converts t to milliseconds since the Unix epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
