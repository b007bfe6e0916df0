package user

import (
	"github.com/go-playground/validator/v10"

	"classtrack/core"
)

var (
	programTag  = "known_program"
	programText = "unknown program"

	subjectTag  = "subject_in_program"
	subjectText = "subject is not offered under the selected program"
)

func init() {
	core.Validate.RegisterStructValidation(loginStructValidation, Login{})
	core.RegisterCustomTranslation(programTag, programText)
	core.RegisterCustomTranslation(subjectTag, subjectText)
}

// loginStructValidation checks that the program exists and offers the subject.
func loginStructValidation(sl validator.StructLevel) {
	l, ok := sl.Current().Interface().(Login)
	if !ok || l.Program == "" || l.Subject == "" {
		return // `required` covers the empty cases
	}

	subjects := ProgramSubjects(l.Program)
	if subjects == nil {
		sl.ReportError(l.Program, "program", "Program", programTag, "")
		return
	}
	for _, s := range subjects {
		if s == l.Subject {
			return
		}
	}
	sl.ReportError(l.Subject, "subject", "Subject", subjectTag, "")
}
