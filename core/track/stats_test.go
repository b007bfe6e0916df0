package track

import (
	"reflect"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{done: 0, total: 24, want: 0},
		{done: 3, total: 24, want: 13}, // 12.5 rounds up
		{done: 12, total: 24, want: 50},
		{done: 24, total: 24, want: 100},
		{done: 30, total: 24, want: 100}, // extra classes clamp
		{done: 5, total: 0, want: 0},
		{done: 5, total: -1, want: 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.done, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}

// statsService builds a service over fixed views, bypassing the store.
func statsService() *Service {
	return &Service{
		semesters: []Semester{
			{ID: "sem-a", Name: "1st Semester", Status: StatusActive},
			{ID: "sem-b", Name: "2nd Semester", Status: StatusArchived},
		},
		courses: []Course{
			{ID: "c1", SemesterID: "sem-a", Name: "Bangla", TotalClasses: 24},
			{ID: "c2", SemesterID: "sem-a", Name: "History", TotalClasses: 20},
			{ID: "c3", SemesterID: "sem-b", Name: "Old Course", TotalClasses: 24},
		},
		sessions: []ClassSession{
			{ID: "x1", CourseID: "c1", Date: "2024-05-02", Type: TypeOnline},
			{ID: "x2", CourseID: "c1", Date: "2024-05-04", Type: TypeDRC},
			{ID: "x3", CourseID: "c1", Date: "2024-05-03", Type: TypeDRC},
			{ID: "x4", CourseID: "c2", Date: "2024-05-05", Type: TypeOnline},
			{ID: "x5", CourseID: "c3", Date: "2024-05-06", Type: TypeDRC}, // archived, excluded
		},
	}
}

func TestService_Overall(t *testing.T) {
	svc := statsService()

	got := svc.Overall()
	want := OverallStats{
		TotalScheduled: 44, // 24 + 20, archived semester excluded
		TotalCompleted: 4,
		Remaining:      40,
		Percentage:     9, // round(4/44*100)
	}
	if got != want {
		t.Errorf("Overall() = %+v, want %+v", got, want)
	}
}

func TestService_Overall_empty(t *testing.T) {
	svc := &Service{}
	if got := svc.Overall(); got != (OverallStats{}) {
		t.Errorf("Overall() on an empty store = %+v, want zeros", got)
	}
}

func TestService_Overall_remainingFloor(t *testing.T) {
	svc := &Service{
		semesters: []Semester{{ID: "sem-a", Status: StatusActive}},
		courses:   []Course{{ID: "c1", SemesterID: "sem-a", TotalClasses: 1}},
		sessions: []ClassSession{
			{ID: "x1", CourseID: "c1", Date: "2024-05-02", Type: TypeOnline},
			{ID: "x2", CourseID: "c1", Date: "2024-05-03", Type: TypeDRC},
		},
	}
	if got := svc.Overall().Remaining; got != 0 {
		t.Errorf("Remaining = %d, want floor at 0", got)
	}
}

func TestService_CourseSessions_newestFirst(t *testing.T) {
	svc := statsService()

	got := svc.CourseSessions("c1")
	wantOrder := []string{"x2", "x3", "x1"} // dates 05-04, 05-03, 05-02
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	if !reflect.DeepEqual(ids, wantOrder) {
		t.Errorf("CourseSessions() order = %v, want %v", ids, wantOrder)
	}
}

func TestService_CourseTypeCounts(t *testing.T) {
	svc := statsService()

	if got, want := svc.CourseTypeCounts("c1"), (TypeCounts{Online: 1, DRC: 2}); got != want {
		t.Errorf("CourseTypeCounts(c1) = %+v, want %+v", got, want)
	}
	if got := svc.CourseTypeCounts("no-such-course"); got != (TypeCounts{}) {
		t.Errorf("CourseTypeCounts(unknown) = %+v, want zeros", got)
	}
}

func TestService_CoursePercent(t *testing.T) {
	svc := statsService()
	course := Course{ID: "c1", TotalClasses: 24}
	if got := svc.CoursePercent(course); got != 13 {
		t.Errorf("CoursePercent() = %d, want 13", got)
	}
}
