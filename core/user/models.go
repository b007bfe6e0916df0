package user

import (
	"classtrack/core"
)

// Programs
type Program string

const (
	ProgramBAHonours  Program = "BA Honours"
	ProgramBSSHonours Program = "BSS Honours"
)

// Subjects
type Subject string

const (
	// BA
	SubjectBangla         Subject = "Bangla Language & Literature"
	SubjectIslamicStudies Subject = "Islamic Studies"
	SubjectHistory        Subject = "History"
	SubjectPhilosophy     Subject = "Philosophy"

	// BSS
	SubjectPoliticalScience Subject = "Political Science"
	SubjectSociology        Subject = "Sociology"
)

type ProgramInfo struct {
	ID       Program   `json:"id"`
	Label    string    `json:"label"`
	Subjects []Subject `json:"subjects"`
}

var Programs = []ProgramInfo{
	{
		ID:    ProgramBAHonours,
		Label: "BA Honours",
		Subjects: []Subject{
			SubjectBangla,
			SubjectIslamicStudies,
			SubjectHistory,
			SubjectPhilosophy,
		},
	},
	{
		ID:    ProgramBSSHonours,
		Label: "BSS Honours",
		Subjects: []Subject{
			SubjectPoliticalScience,
			SubjectSociology,
		},
	},
}

// ProgramSubjects returns the subjects offered under `p`, nil if `p` is unknown.
func ProgramSubjects(p Program) []Subject {
	for _, info := range Programs {
		if info.ID == p {
			return info.Subjects
		}
	}
	return nil
}

// User is a local profile, not an authenticated account. The password is a
// cleartext profile discriminator kept only to re-derive the same ID across
// logins; it is never verified against anything.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Program  Program `json:"program"`
	Subject  Subject `json:"subject"`
	Password string  `json:"password,omitempty"`
}

// DeriveID derives the stable profile identifier from a name/password pair.
// It is a convenience key with no collision resistance: distinct pairs whose
// names normalize identically (e.g. "An n" vs "Ann") map to the same ID.
// Kept byte-compatible with stores written by earlier versions of the app.
func DeriveID(name, password string) string {
	return core.Slugify(name) + "_" + password
}

// Login contains the information needed to establish the current profile.
type Login struct {
	Name     string  `json:"name" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Program  Program `json:"program" validate:"required"`
	Subject  Subject `json:"subject" validate:"required"`
}

func (l *Login) Validate() error {
	l.Name = core.CleanString(l.Name)
	return core.TranslateError(core.Validate.Struct(l))
}
