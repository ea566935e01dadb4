// Package accounting computes effective (pause-excluded) durations for
// sessions and aggregate durations for projects
package accounting

import "github.com/ayoisaiah/stint/internal/models"

// Effective returns the time spent working in a completed session. It is
// zero for sessions without an end time and never negative.
func Effective(s *models.Session) int64 {
	if s.EndTime == nil || s.StartTime <= 0 {
		return 0
	}

	return max(0, (*s.EndTime-s.StartTime)-s.TotalPausedDuration)
}

// Elapsed returns the live working time of an active session at now,
// excluding completed pauses and the pause currently open.
func Elapsed(s *models.Session, now int64) int64 {
	if s == nil || s.StartTime <= 0 {
		return 0
	}

	var openPause int64
	if s.IsPaused && s.PausedStartTime != nil {
		openPause = now - *s.PausedStartTime
	}

	return max(0, (now-s.StartTime)-(s.TotalPausedDuration+openPause))
}

// ProjectTotal sums the effective durations of the completed sessions
// assigned to projectID. Sessions whose end time precedes their start time
// are left out and their ids returned in skipped.
func ProjectTotal(
	projectID string,
	sessions []models.Session,
) (total int64, skipped []string) {
	for i := range sessions {
		s := &sessions[i]

		if !s.AssignedTo(projectID) || s.EndTime == nil {
			continue
		}

		if *s.EndTime < s.StartTime {
			skipped = append(skipped, s.ID)
			continue
		}

		total += Effective(s)
	}

	return total, skipped
}

// ProjectDuration returns the duration to display for p: the frozen value
// for a finalized project, otherwise the total recomputed from sessions.
func ProjectDuration(
	p *models.Project,
	sessions []models.Session,
) (total int64, skipped []string) {
	if p.IsFinalized && p.FinalizedTotalDuration != nil {
		return *p.FinalizedTotalDuration, nil
	}

	return ProjectTotal(p.ID, sessions)
}
