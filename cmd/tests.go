package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/cmd/prompt"
	"github.com/allen-go/allen/internal/loader"
)

var (
	withSolutions bool
	testID        string
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List test records, optionally with solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		var records []allen.TestRecord
		if err := loader.Run(l, "[ Loading test records... ]", func() error {
			records, err = client.TestRecords(ctx)
			return err
		}); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !withSolutions && testID == "" {
			printTestRecords(out, records)
			return nil
		}
		if len(records) == 0 {
			fmt.Fprintln(out, faint("No test records"))
			return nil
		}

		index := findTestRecord(records, testID)
		if index < 0 {
			if testID != "" {
				return fmt.Errorf("no test with id %q", testID)
			}
			if index, err = prompt.SelectTestRecord(records); err != nil {
				return err
			}
		}

		r := records[index]
		var subjects []allen.SubjectSolution
		if err := loader.Run(l, fmt.Sprintf("[ Loading solutions of %s... ]", r.TestName), func() error {
			subjects, err = r.SubjectSolutions(ctx, client)
			return err
		}); err != nil {
			return err
		}

		printSolutions(out, r, subjects)
		return nil
	},
}

func init() {
	testsCmd.Flags().BoolVarP(&withSolutions, "solutions", "s", false, "pick a test and show its solutions")
	testsCmd.Flags().StringVar(&testID, "test", "", "show solutions of the test with this id")
	rootCmd.AddCommand(testsCmd)
}

func findTestRecord(records []allen.TestRecord, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range records {
		if r.TestID.String() == id {
			return i
		}
	}
	return -1
}

func printTestRecords(w io.Writer, records []allen.TestRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, faint("No test records"))
		return
	}
	t := newTable(w, "Test", "Date", "Physics", "Chemistry", "Maths", "Biology", "Total", "Percent", "Rank", "ID")
	for _, r := range records {
		t.Append([]string{
			r.TestName,
			orDash(r.TestDate()),
			strconv.Itoa(r.Physics),
			strconv.Itoa(r.Chemistry),
			mark(r.Maths),
			mark(r.Biology),
			strconv.Itoa(r.Total),
			strconv.FormatFloat(r.Percentage, 'f', 2, 64),
			strconv.Itoa(r.Rank),
			r.TestID.String(),
		})
	}
	t.Render()
}

func printSolutions(w io.Writer, r allen.TestRecord, subjects []allen.SubjectSolution) {
	fmt.Fprintln(w, heading(r.TestName), faint(r.TestDate()))
	for _, s := range subjects {
		fmt.Fprintf(w, "%s %s\n", heading(s.SubjectName), faint(fmt.Sprintf("(%d questions)", s.TotalQuestions)))
		t := newTable(w, "Q", "Response", "Solution")
		for _, q := range s.Solutions {
			t.Append([]string{strconv.Itoa(q.QuestionNo), orDash(q.Response), q.Image})
		}
		t.Render()
	}
}
