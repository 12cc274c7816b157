package allen

import (
	"cmp"
	"context"
)

// MissingMark is stored for a biology or maths mark the API sent in a
// non-numeric form, e.g. "AB" for an absent paper.
const MissingMark = -1

// TestRecord is an attempted test and its result.
type TestRecord struct {
	Biology    int
	Physics    int
	Chemistry  int
	Maths      int
	Total      int
	Percentage float64
	Rank       int
	// TestName, for example "JEE ENTHUSE INTERNAL TEST-01-PAPER 1"
	TestName string
	Date     string
	TestID   ID
}

// DecodeTestRecord builds a TestRecord. Biology and maths fall back to
// MissingMark, every other numeric field must be present and numeric.
func DecodeTestRecord(o Object) (TestRecord, error) {
	var (
		r   TestRecord
		err error
	)
	r.Biology = o.IntOr("Bio", MissingMark)
	if r.Physics, err = o.Int("Phy"); err != nil {
		return TestRecord{}, err
	}
	if r.Chemistry, err = o.Int("Chem"); err != nil {
		return TestRecord{}, err
	}
	r.Maths = o.IntOr("Math", MissingMark)
	if r.Total, err = o.Int("Total"); err != nil {
		return TestRecord{}, err
	}
	if r.Percentage, err = o.Float("Per"); err != nil {
		return TestRecord{}, err
	}
	if r.Percentage < 0 {
		return TestRecord{}, outOfRange("Per", r.Percentage)
	}
	if r.Rank, err = o.Int("Rank"); err != nil {
		return TestRecord{}, err
	}
	r.TestName = o.String("TestName")
	r.Date = o.String("TestDate")
	r.TestID = o.ID("TestID")
	return r, nil
}

// TestDate returns the date in DateLayout, or "" when Date is not a date.
func (r TestRecord) TestDate() string {
	return formatDate(r.Date)
}

// SubjectSolutions fetches the per-subject solutions of the first paper of the
// test. TestID is sent back with the JSON kind it was received with.
func (r TestRecord) SubjectSolutions(ctx context.Context, f Fetcher) ([]SubjectSolution, error) {
	p, err := f.FetchJSON(ctx, Request{
		Path: TestSolutionPath,
		Body: map[string]interface{}{
			"PaperNo": 1,
			"TestID":  r.TestID,
		},
	})
	if err != nil {
		return nil, err
	}
	data, err := p.Object()
	if err != nil {
		return nil, err
	}
	papers, err := data.Objects("listPaper")
	if err != nil {
		return nil, p.Invalid(err)
	}
	if len(papers) == 0 {
		return nil, p.Invalid(missing("listPaper"))
	}
	subjects, err := papers[0].Objects("listSubject")
	if err != nil {
		return nil, p.Invalid(err)
	}

	solutions := make([]SubjectSolution, 0, len(subjects))
	for _, o := range subjects {
		s, err := DecodeSubjectSolution(o)
		if err != nil {
			return nil, p.Invalid(err)
		}
		solutions = append(solutions, s)
	}
	return solutions, nil
}

// Compare orders test records field by field.
func (r TestRecord) Compare(o TestRecord) int {
	return cmp.Or(
		cmp.Compare(r.Biology, o.Biology),
		cmp.Compare(r.Physics, o.Physics),
		cmp.Compare(r.Chemistry, o.Chemistry),
		cmp.Compare(r.Maths, o.Maths),
		cmp.Compare(r.Total, o.Total),
		cmp.Compare(r.Percentage, o.Percentage),
		cmp.Compare(r.Rank, o.Rank),
		cmp.Compare(r.TestName, o.TestName),
		cmp.Compare(r.Date, o.Date),
		r.TestID.Compare(o.TestID),
	)
}
