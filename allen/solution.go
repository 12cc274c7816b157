package allen

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Solution is the answer key entry of one question.
type Solution struct {
	QuestionNo int
	// Response is the answer marked while attempting the test
	Response string
	// Image is the url of the image holding the worked solution
	Image string
}

// DecodeSolution ...
func DecodeSolution(o Object) (Solution, error) {
	n, err := o.OptionalInt("QuestionNo")
	if err != nil {
		return Solution{}, err
	}
	return Solution{
		QuestionNo: n,
		Response:   o.String("Response"),
		Image:      o.String("SolutionImage"),
	}, nil
}

// Compare ...
func (s Solution) Compare(o Solution) int {
	return cmp.Or(
		cmp.Compare(s.QuestionNo, o.QuestionNo),
		cmp.Compare(s.Response, o.Response),
		cmp.Compare(s.Image, o.Image),
	)
}

// SubjectSolution holds the solutions of one subject of a test paper.
type SubjectSolution struct {
	SubjectName    string
	TotalQuestions int
	Solutions      []Solution
}

// DecodeSubjectSolution title-cases the subject name, "PHYSICS" becomes "Physics".
func DecodeSubjectSolution(o Object) (SubjectSolution, error) {
	total, err := o.OptionalInt("QTo")
	if err != nil {
		return SubjectSolution{}, err
	}
	list, err := o.Objects("listQuestion")
	if err != nil {
		return SubjectSolution{}, err
	}
	solutions := make([]Solution, 0, len(list))
	for _, item := range list {
		s, err := DecodeSolution(item)
		if err != nil {
			return SubjectSolution{}, err
		}
		solutions = append(solutions, s)
	}
	return SubjectSolution{
		SubjectName:    cases.Title(language.Und).String(o.String("SubjectName")),
		TotalQuestions: total,
		Solutions:      solutions,
	}, nil
}

// Compare ...
func (s SubjectSolution) Compare(o SubjectSolution) int {
	return cmp.Or(
		cmp.Compare(s.SubjectName, o.SubjectName),
		cmp.Compare(s.TotalQuestions, o.TotalQuestions),
		slices.CompareFunc(s.Solutions, o.Solutions, Solution.Compare),
	)
}
