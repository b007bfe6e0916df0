package track

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"classtrack/core"
	"classtrack/core/user"
)

// Storage keys for the three persisted collections. All profiles share the
// same three flat collections; ownership is only a matter of filtering.
const (
	semestersKey = "semesters"
	coursesKey   = "courses"
	sessionsKey  = "sessions"
)

var (
	timeNow = time.Now // mockable

	newID = func() string { return uuid.NewString() } // mockable
)

// Service is the entity store for the current profile's semesters, courses
// and class sessions.
//
// Every mutation is a read-partition-rewrite cycle over the full persisted
// collections with no locking: the store is reloaded, rows owned by other
// profiles are kept aside, and each collection is rewritten as
// other-profiles' rows + the new current-profile rows. This assumes at most
// one writer; two app instances mutating the same physical store can lose
// each other's writes wholesale. That is an accepted precondition of the
// single-user usage model, not something the service guards against.
type Service struct {
	kv  core.KVStore
	log core.Logger

	usr    user.User
	authed bool

	// current profile's scoped views
	semesters []Semester
	courses   []Course
	sessions  []ClassSession
}

func NewService(kv core.KVStore, log core.Logger) *Service {
	return &Service{kv: kv, log: log}
}

// SetUser makes `usr` the owning profile and recomputes the scoped views
// from the full persisted collections: semesters filtered by owner, then
// courses by the owned semester ids, then sessions by the owned course ids.
func (svc *Service) SetUser(usr user.User) {
	svc.usr = usr
	svc.authed = true

	allSemesters := core.LoadJSON[[]Semester](svc.kv, svc.log, semestersKey, nil)
	allCourses := core.LoadJSON[[]Course](svc.kv, svc.log, coursesKey, nil)
	allSessions := core.LoadJSON[[]ClassSession](svc.kv, svc.log, sessionsKey, nil)

	svc.semesters, svc.courses, svc.sessions = scope(usr.ID, allSemesters, allCourses, allSessions)
}

// ClearUser empties the scoped views; the persisted store is left untouched.
func (svc *Service) ClearUser() {
	svc.usr = user.User{}
	svc.authed = false
	svc.semesters, svc.courses, svc.sessions = nil, nil, nil
}

// scope runs the three-stage ownership cascade, each stage's output driving
// the next stage's filter.
func scope(userID string, semesters []Semester, courses []Course, sessions []ClassSession) ([]Semester, []Course, []ClassSession) {
	owned := filter(semesters, func(s Semester) bool { return s.UserID == userID })

	semIDs := make(map[string]bool, len(owned))
	for _, s := range owned {
		semIDs[s.ID] = true
	}
	ownedCourses := filter(courses, func(c Course) bool { return semIDs[c.SemesterID] })

	courseIDs := make(map[string]bool, len(ownedCourses))
	for _, c := range ownedCourses {
		courseIDs[c.ID] = true
	}
	ownedSessions := filter(sessions, func(s ClassSession) bool { return courseIDs[s.CourseID] })

	return owned, ownedCourses, ownedSessions
}

// saveAll persists the given collections as the current profile's complete
// data (not a delta), re-reading the store first so other profiles' rows
// survive the rewrite. The in-memory views are replaced on the way out.
func (svc *Service) saveAll(newSemesters []Semester, newCourses []Course, newSessions []ClassSession) {
	if !svc.authed {
		return
	}

	allSemesters := core.LoadJSON[[]Semester](svc.kv, svc.log, semestersKey, nil)
	otherSemesters := filter(allSemesters, func(s Semester) bool { return s.UserID != svc.usr.ID })

	otherSemIDs := make(map[string]bool, len(otherSemesters))
	for _, s := range otherSemesters {
		otherSemIDs[s.ID] = true
	}
	allCourses := core.LoadJSON[[]Course](svc.kv, svc.log, coursesKey, nil)
	otherCourses := filter(allCourses, func(c Course) bool { return otherSemIDs[c.SemesterID] })

	otherCourseIDs := make(map[string]bool, len(otherCourses))
	for _, c := range otherCourses {
		otherCourseIDs[c.ID] = true
	}
	allSessions := core.LoadJSON[[]ClassSession](svc.kv, svc.log, sessionsKey, nil)
	otherSessions := filter(allSessions, func(s ClassSession) bool { return otherCourseIDs[s.CourseID] })

	core.SaveJSON(svc.kv, svc.log, semestersKey, append(otherSemesters, newSemesters...))
	core.SaveJSON(svc.kv, svc.log, coursesKey, append(otherCourses, newCourses...))
	core.SaveJSON(svc.kv, svc.log, sessionsKey, append(otherSessions, newSessions...))

	svc.semesters = newSemesters
	svc.courses = newCourses
	svc.sessions = newSessions
}

// Accessors return copies; callers cannot mutate the scoped views.

func (svc *Service) Semesters() []Semester {
	return append([]Semester(nil), svc.semesters...)
}

func (svc *Service) Courses() []Course {
	return append([]Course(nil), svc.courses...)
}

func (svc *Service) Sessions() []ClassSession {
	return append([]ClassSession(nil), svc.sessions...)
}

// ActiveSemesters returns the current profile's semesters with StatusActive.
func (svc *Service) ActiveSemesters() []Semester {
	return filter(svc.Semesters(), func(s Semester) bool { return s.Status == StatusActive })
}

// SemesterCourses returns the courses belonging to the given semester.
func (svc *Service) SemesterCourses(semesterID string) []Course {
	return filter(svc.Courses(), func(c Course) bool { return c.SemesterID == semesterID })
}

// AddSemester creates an Active semester owned by the current profile. The
// id is a generation-order timestamp string.
func (svc *Service) AddSemester(name string) Semester {
	if !svc.authed {
		return Semester{}
	}
	now := timeNow()
	sem := Semester{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		UserID:    svc.usr.ID,
		Name:      core.CleanString(name),
		Status:    StatusActive,
		StartDate: now.UTC().Format(time.RFC3339),
		CreatedAt: now.UnixMilli(),
	}
	svc.saveAll(append(svc.Semesters(), sem), svc.courses, svc.sessions)
	return sem
}

// UpdateSemesterStatus archives or re-activates a semester; no-op when the
// id is unknown.
func (svc *Service) UpdateSemesterStatus(id string, status SemesterStatus) {
	updated := svc.Semesters()
	for i, s := range updated {
		if s.ID == id {
			updated[i].Status = status
		}
	}
	svc.saveAll(updated, svc.courses, svc.sessions)
}

// UpdateSemesterName renames a semester; no-op when the id is unknown.
func (svc *Service) UpdateSemesterName(id, name string) {
	updated := svc.Semesters()
	for i, s := range updated {
		if s.ID == id {
			updated[i].Name = core.CleanString(name)
		}
	}
	svc.saveAll(updated, svc.courses, svc.sessions)
}

// DeleteSemester removes the semester, all its courses, and all sessions of
// those courses — a two-level cascade computed before the write.
func (svc *Service) DeleteSemester(id string) {
	updatedSemesters := filter(svc.Semesters(), func(s Semester) bool { return s.ID != id })

	deletedCourseIDs := make(map[string]bool)
	for _, c := range svc.courses {
		if c.SemesterID == id {
			deletedCourseIDs[c.ID] = true
		}
	}
	updatedCourses := filter(svc.Courses(), func(c Course) bool { return c.SemesterID != id })
	updatedSessions := filter(svc.Sessions(), func(s ClassSession) bool { return !deletedCourseIDs[s.CourseID] })

	svc.saveAll(updatedSemesters, updatedCourses, updatedSessions)
}

func (svc *Service) AddCourse(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	course := Course{
		ID:           newID(),
		SemesterID:   nc.SemesterID,
		Name:         nc.Name,
		TeacherName:  nc.TeacherName,
		TotalClasses: nc.TotalClasses,
	}
	svc.saveAll(svc.semesters, append(svc.Courses(), course), svc.sessions)
	return course, nil
}

// UpdateCourse shallow-merges the set fields of `uc` into the matching
// course; no-op when the id is unknown.
func (svc *Service) UpdateCourse(id string, uc UpdateCourse) error {
	if err := uc.Validate(); err != nil {
		return err
	}
	updated := svc.Courses()
	for i, c := range updated {
		if c.ID != id {
			continue
		}
		if uc.Name != "" {
			updated[i].Name = uc.Name
		}
		if uc.TeacherName != "" {
			updated[i].TeacherName = uc.TeacherName
		}
		if uc.TotalClasses != nil {
			updated[i].TotalClasses = *uc.TotalClasses
		}
	}
	svc.saveAll(svc.semesters, updated, svc.sessions)
	return nil
}

// DeleteCourse removes the course and cascades to its sessions.
func (svc *Service) DeleteCourse(id string) {
	updatedCourses := filter(svc.Courses(), func(c Course) bool { return c.ID != id })
	updatedSessions := filter(svc.Sessions(), func(s ClassSession) bool { return s.CourseID != id })
	svc.saveAll(svc.semesters, updatedCourses, updatedSessions)
}

func (svc *Service) AddSession(ns NewSession) (ClassSession, error) {
	if err := ns.Validate(); err != nil {
		return ClassSession{}, err
	}
	session := ClassSession{
		ID:       newID(),
		CourseID: ns.CourseID,
		Date:     ns.Date,
		Type:     ns.Type,
		Note:     ns.Note,
	}
	svc.saveAll(svc.semesters, svc.courses, append(svc.Sessions(), session))
	return session, nil
}

func (svc *Service) DeleteSession(id string) {
	updated := filter(svc.Sessions(), func(s ClassSession) bool { return s.ID != id })
	svc.saveAll(svc.semesters, svc.courses, updated)
}

// Import merges a backup into the full persisted store using replace-by-id
// semantics (incoming wins on collision) and then re-scopes the current
// profile's views.
//
// The merge is deliberately global: it touches every profile's rows in the
// shared store and does not sanity-check incoming userId fields, so a
// malformed backup can alter other profiles' visible data. This mirrors the
// behavior the export/import feature has always had ("restore everyone");
// restricting it to the current profile would break restoring a backup onto
// a fresh store where the profile ids differ.
func (svc *Service) Import(data BackupData) {
	allSemesters := core.LoadJSON[[]Semester](svc.kv, svc.log, semestersKey, nil)
	allCourses := core.LoadJSON[[]Course](svc.kv, svc.log, coursesKey, nil)
	allSessions := core.LoadJSON[[]ClassSession](svc.kv, svc.log, sessionsKey, nil)

	mergedSemesters := mergeByID(allSemesters, data.Semesters, func(s Semester) string { return s.ID })
	mergedCourses := mergeByID(allCourses, data.Courses, func(c Course) string { return c.ID })
	mergedSessions := mergeByID(allSessions, data.Sessions, func(s ClassSession) string { return s.ID })

	core.SaveJSON(svc.kv, svc.log, semestersKey, mergedSemesters)
	core.SaveJSON(svc.kv, svc.log, coursesKey, mergedCourses)
	core.SaveJSON(svc.kv, svc.log, sessionsKey, mergedSessions)

	if svc.authed {
		svc.semesters, svc.courses, svc.sessions = scope(svc.usr.ID, mergedSemesters, mergedCourses, mergedSessions)
	}
}

// mergeByID keeps every record of `current`, replacing those whose id also
// appears in `incoming` and appending the rest of `incoming` in order.
func mergeByID[T any](current, incoming []T, id func(T) string) []T {
	out := make([]T, 0, len(current)+len(incoming))
	index := make(map[string]int, len(current))
	for _, item := range current {
		index[id(item)] = len(out)
		out = append(out, item)
	}
	for _, item := range incoming {
		if i, ok := index[id(item)]; ok {
			out[i] = item
		} else {
			index[id(item)] = len(out)
			out = append(out, item)
		}
	}
	return out
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
