package allen

import (
	"cmp"
	"strings"
	"time"
)

// Examination is an entry of the examination calendar.
type Examination struct {
	// MarkingScheme, for example "JEE MAIN. PATTERN"
	MarkingScheme string
	Syllabus      string
	TestCentre    string
	// TestDay is a weekday name such as "Wednesday"
	TestDay    string
	TestName   string
	TimeDetail string
	Date       string
}

// DecodeExamination fails when TestDay is not the name of a weekday.
func DecodeExamination(o Object) (Examination, error) {
	day := o.String("TestDay")
	if !isWeekday(day) {
		return Examination{}, outOfRange("TestDay", day)
	}
	return Examination{
		MarkingScheme: o.String("MarkingScheme"),
		Syllabus:      o.String("Syllabus"),
		TestCentre:    o.String("TestCentre"),
		TestDay:       day,
		TestName:      o.String("TestName"),
		TimeDetail:    o.String("TimeDetail"),
		Date:          o.String("TestDate"),
	}, nil
}

// TestDate returns the date in DateLayout, or "" when Date is not a date.
func (e Examination) TestDate() string {
	return formatDate(e.Date)
}

// Compare orders examinations field by field.
func (e Examination) Compare(o Examination) int {
	return cmp.Or(
		cmp.Compare(e.MarkingScheme, o.MarkingScheme),
		cmp.Compare(e.Syllabus, o.Syllabus),
		cmp.Compare(e.TestCentre, o.TestCentre),
		cmp.Compare(e.TestDay, o.TestDay),
		cmp.Compare(e.TestName, o.TestName),
		cmp.Compare(e.TimeDetail, o.TimeDetail),
		cmp.Compare(e.Date, o.Date),
	)
}

func isWeekday(s string) bool {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return true
		}
	}
	return false
}
