package track

import (
	"math"
	"sort"
)

// OverallStats aggregates completion across all Active semesters; Archived
// semesters are excluded from current statistics.
type OverallStats struct {
	TotalScheduled int `json:"totalScheduled"`
	TotalCompleted int `json:"totalCompleted"`
	Remaining      int `json:"remaining"`
	Percentage     int `json:"percentage"`
}

// TypeCounts breaks a course's sessions down by delivery mode.
type TypeCounts struct {
	Online int `json:"online"`
	DRC    int `json:"drc"`
}

// Percent returns round(done/total*100) clamped to 100. A non-positive
// total yields 0 rather than a division failure.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(done) / float64(total) * 100))
	if p > 100 {
		return 100
	}
	return p
}

// CourseSessions returns the course's sessions, newest first.
func (svc *Service) CourseSessions(courseID string) []ClassSession {
	sessions := filter(svc.Sessions(), func(s ClassSession) bool { return s.CourseID == courseID })
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].Date > sessions[j].Date })
	return sessions
}

// CourseCompleted returns the number of sessions logged for the course.
func (svc *Service) CourseCompleted(courseID string) int {
	n := 0
	for _, s := range svc.sessions {
		if s.CourseID == courseID {
			n++
		}
	}
	return n
}

// CoursePercent returns the course's completion percentage.
func (svc *Service) CoursePercent(c Course) int {
	return Percent(svc.CourseCompleted(c.ID), c.TotalClasses)
}

// CourseTypeCounts returns the course's session breakdown by type.
func (svc *Service) CourseTypeCounts(courseID string) TypeCounts {
	var tc TypeCounts
	for _, s := range svc.sessions {
		if s.CourseID != courseID {
			continue
		}
		switch s.Type {
		case TypeOnline:
			tc.Online++
		case TypeDRC:
			tc.DRC++
		}
	}
	return tc
}

// Overall computes completion across the Active semesters' courses.
func (svc *Service) Overall() OverallStats {
	var stats OverallStats
	activeCourseIDs := make(map[string]bool)

	for _, sem := range svc.ActiveSemesters() {
		for _, c := range svc.SemesterCourses(sem.ID) {
			activeCourseIDs[c.ID] = true
			stats.TotalScheduled += c.TotalClasses
		}
	}
	for _, s := range svc.sessions {
		if activeCourseIDs[s.CourseID] {
			stats.TotalCompleted++
		}
	}

	stats.Remaining = stats.TotalScheduled - stats.TotalCompleted
	if stats.Remaining < 0 {
		stats.Remaining = 0
	}
	if stats.TotalScheduled > 0 {
		stats.Percentage = int(math.Round(float64(stats.TotalCompleted) / float64(stats.TotalScheduled) * 100))
	}
	return stats
}
