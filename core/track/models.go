package track

import (
	"classtrack/core"
)

type SemesterStatus string

const (
	StatusActive   SemesterStatus = "Active"
	StatusArchived SemesterStatus = "Archived"
)

type SessionType string

const (
	TypeOnline SessionType = "Online"
	TypeDRC    SessionType = "DRC" // face-to-face classes at the Distance Regional Center
)

// DefaultTotalClasses is the expected number of sessions for a course to count as complete.
const DefaultTotalClasses = 24

// SemesterOptions are the ordinal labels offered when naming a semester;
// free text is accepted too.
var SemesterOptions = []string{
	"1st Semester", "2nd Semester", "3rd Semester", "4th Semester",
	"5th Semester", "6th Semester", "7th Semester", "8th Semester",
}

// Semester is a time-bounded academic term owned by a profile. The UserID
// link is an ownership relation maintained by the service, not a constraint
// enforced by the store.
type Semester struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Name      string         `json:"name"`
	Status    SemesterStatus `json:"status"`
	StartDate string         `json:"startDate"`
	CreatedAt int64          `json:"createdAt"` // unix millis, display ordering
}

type Course struct {
	ID           string `json:"id"`
	SemesterID   string `json:"semesterId"`
	Name         string `json:"name"`
	TeacherName  string `json:"teacherName"`
	TotalClasses int    `json:"totalClasses"`
}

// ClassSession is one attendance record for a course.
type ClassSession struct {
	ID       string      `json:"id"`
	CourseID string      `json:"courseId"`
	Date     string      `json:"date"` // calendar date, "2006-01-02"
	Type     SessionType `json:"type"`
	Note     string      `json:"note,omitempty"`
}

// NewCourse contains the information needed to add a Course. The referenced
// semester is deliberately not checked for existence; a bad SemesterID
// produces an orphaned course retrievable by id but invisible to any
// semester-scoped view.
type NewCourse struct {
	SemesterID   string `json:"semesterId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	TeacherName  string `json:"teacherName" validate:"required"`
	TotalClasses int    `json:"totalClasses" validate:"gt=0"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.TeacherName = core.CleanString(nc.TeacherName)
	if nc.TotalClasses == 0 {
		nc.TotalClasses = DefaultTotalClasses
	}
	return core.TranslateError(core.Validate.Struct(nc))
}

// UpdateCourse defines what may be modified on an existing Course; only set
// fields are applied.
type UpdateCourse struct {
	Name         string `json:"name"`
	TeacherName  string `json:"teacherName"`
	TotalClasses *int   `json:"totalClasses" validate:"omitempty,gt=0"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.TeacherName = core.CleanString(uc.TeacherName)
	return core.TranslateError(core.Validate.Struct(uc))
}

// NewSession contains the information needed to log a ClassSession. As with
// NewCourse, the parent course is not checked for existence.
type NewSession struct {
	CourseID string      `json:"courseId" validate:"required"`
	Date     string      `json:"date" validate:"required"`
	Type     SessionType `json:"type" validate:"required,oneof='Online' 'DRC'"`
	Note     string      `json:"note"`
}

func (ns *NewSession) Validate() error {
	ns.Note = core.CleanString(ns.Note)
	return core.TranslateError(core.Validate.Struct(ns))
}
