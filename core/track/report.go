package track

import (
	"fmt"
	"strings"
	"time"

	"classtrack/core/user"
)

// Report formatting. Reports are plain text meant for the clipboard /
// messaging apps; they are a pure function of the scoped collections and
// the passed-in time, so identical input always yields identical output.

const reportDateLayout = "02-01-2006"

const reportFooter = "App: Honours Class Tracker"

// formatReportDate renders a stored date string as dd-mm-yyyy. Stored dates
// are "2006-01-02" calendar dates; start dates are RFC3339. Anything else is
// rendered verbatim rather than dropped.
func formatReportDate(date string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(reportDateLayout)
		}
	}
	return date
}

// FullReport builds the shareable progress summary covering every Active
// semester of the current profile.
func (svc *Service) FullReport(usr user.User, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎓 *Honours Class Report*\n")
	fmt.Fprintf(&b, "📅 Date: %s\n", now.Format(reportDateLayout))
	fmt.Fprintf(&b, "👤 Name: %s\n", usr.Name)
	fmt.Fprintf(&b, "🎓 Program: %s\n", usr.Program)
	fmt.Fprintf(&b, "📚 Subject: %s\n", usr.Subject)
	fmt.Fprintf(&b, "------------------")

	for _, sem := range svc.ActiveSemesters() {
		fmt.Fprintf(&b, "\n\n📌 *%s*", sem.Name)
		for _, c := range svc.SemesterCourses(sem.ID) {
			done := svc.CourseCompleted(c.ID)
			tc := svc.CourseTypeCounts(c.ID)
			left := c.TotalClasses - done
			if left < 0 {
				left = 0
			}
			fmt.Fprintf(&b, "\n- %s: %d done (Online: %d, DRC: %d), %d left", c.Name, done, tc.Online, tc.DRC, left)
		}
	}

	stats := svc.Overall()
	fmt.Fprintf(&b, "\n\n📊 *Overall Progress*\n")
	fmt.Fprintf(&b, "✅ Completed: %d classes\n", stats.TotalCompleted)
	fmt.Fprintf(&b, "⏳ Remaining: %d classes\n", stats.Remaining)
	fmt.Fprintf(&b, "📈 Progress: %d%%\n\n", stats.Percentage)
	b.WriteString(reportFooter)

	return b.String()
}

// CourseReport builds the shareable summary of a single course, with its
// class history newest first.
func (svc *Service) CourseReport(c Course) string {
	sessions := svc.CourseSessions(c.ID)
	completed := len(sessions)
	tc := svc.CourseTypeCounts(c.ID)
	remaining := c.TotalClasses - completed
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 *Course Report: %s*\n", c.Name)
	fmt.Fprintf(&b, "👤 Teacher: %s\n", c.TeacherName)
	fmt.Fprintf(&b, "📊 Progress: %d/%d (%d%%)\n", completed, c.TotalClasses, Percent(completed, c.TotalClasses))
	fmt.Fprintf(&b, "🏫 Breakdown: Online: %d, DRC: %d\n", tc.Online, tc.DRC)
	fmt.Fprintf(&b, "⏳ Remaining: %d classes\n", remaining)
	fmt.Fprintf(&b, "------------------")

	if len(sessions) > 0 {
		fmt.Fprintf(&b, "\n\n📝 *Class History:*")
		for i, s := range sessions {
			fmt.Fprintf(&b, "\n%d. %s (%s)", len(sessions)-i, formatReportDate(s.Date), s.Type)
			if s.Note != "" {
				fmt.Fprintf(&b, " - %s", s.Note)
			}
		}
	} else {
		fmt.Fprintf(&b, "\n\nNo classes recorded yet.")
	}

	fmt.Fprintf(&b, "\n\n%s", reportFooter)
	return b.String()
}
