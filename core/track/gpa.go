package track

// CGPA calculation on the standard 4.00 grading scale.

type GradePoint struct {
	Grade string  `json:"grade"`
	Point float64 `json:"point"`
}

var GradePoints = []GradePoint{
	{Grade: "A+", Point: 4.00},
	{Grade: "A", Point: 3.75},
	{Grade: "A-", Point: 3.50},
	{Grade: "B+", Point: 3.25},
	{Grade: "B", Point: 3.00},
	{Grade: "B-", Point: 2.75},
	{Grade: "C+", Point: 2.50},
	{Grade: "C", Point: 2.25},
	{Grade: "D", Point: 2.00},
	{Grade: "F", Point: 0.00},
}

// PointForGrade maps a letter grade to its grade point.
func PointForGrade(grade string) (float64, bool) {
	for _, gp := range GradePoints {
		if gp.Grade == grade {
			return gp.Point, true
		}
	}
	return 0, false
}

// GradeRow is one course entry in a CGPA calculation.
type GradeRow struct {
	CourseName string  `json:"courseName"`
	Credit     float64 `json:"credit"`
	GradePoint float64 `json:"gradePoint"`
}

// ComputeCGPA returns the credit-weighted grade point average and the total
// credits counted. Rows with a non-positive credit are skipped; no credits
// yields 0.
func ComputeCGPA(rows []GradeRow) (cgpa, totalCredits float64) {
	var totalPoints float64
	for _, row := range rows {
		if row.Credit > 0 {
			totalPoints += row.GradePoint * row.Credit
			totalCredits += row.Credit
		}
	}
	if totalCredits == 0 {
		return 0, 0
	}
	return totalPoints / totalCredits, totalCredits
}
