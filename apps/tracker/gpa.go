package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"classtrack/core/track"
)

// cgpa computes a CGPA from NAME:CREDIT:GRADE args, e.g. `cgpa Bangla:3:A+`.
func (cli *commandLine) cgpa(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cli.out, "Usage:")
		fmt.Fprintln(cli.out, "  cgpa NAME:CREDIT:GRADE [NAME:CREDIT:GRADE ...]")
		fmt.Fprintf(cli.out, "  grades: %s\n", gradeList())
		return errHelp
	}

	rows := make([]track.GradeRow, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) != 3 {
			return errors.Errorf("%q: want NAME:CREDIT:GRADE", arg)
		}
		credit, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return errors.Errorf("%q: credit must be a number", arg)
		}
		point, ok := track.PointForGrade(parts[2])
		if !ok {
			return errors.Errorf("%q: unknown grade %q (one of %s)", arg, parts[2], gradeList())
		}
		rows = append(rows, track.GradeRow{CourseName: parts[0], Credit: credit, GradePoint: point})
	}

	cgpa, credits := track.ComputeCGPA(rows)
	fmt.Fprintf(cli.out, "CGPA: %.2f over %g credits\n", cgpa, credits)
	return nil
}

func gradeList() string {
	grades := make([]string, len(track.GradePoints))
	for i, gp := range track.GradePoints {
		grades[i] = gp.Grade
	}
	return strings.Join(grades, " ")
}
