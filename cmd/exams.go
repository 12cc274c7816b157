package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/renameio/v2/maybe"
	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/calendar"
	"github.com/allen-go/allen/internal/loader"
)

var icsFile string

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Show the examination calendar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		var exams []allen.Examination
		if err := loader.Run(l, "[ Loading exam calendar... ]", func() error {
			exams, err = client.ExamCalendar(ctx)
			return err
		}); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch icsFile {
		case "":
			printExams(out, exams)
		case "-":
			calendar.Write(out, exams)
		default:
			if err := writeICS(icsFile, exams); err != nil {
				return err
			}
			fmt.Fprintln(out, success(fmt.Sprintf("Wrote %d exams to %s", len(exams), icsFile)))
		}
		return nil
	},
}

func init() {
	examsCmd.Flags().StringVar(&icsFile, "ics", "", "export the calendar as iCalendar to this file, - for stdout")
	rootCmd.AddCommand(examsCmd)
}

func writeICS(path string, exams []allen.Examination) error {
	var buf bytes.Buffer
	calendar.Write(&buf, exams)
	return maybe.WriteFile(path, buf.Bytes(), 0o644)
}

func printExams(w io.Writer, exams []allen.Examination) {
	if len(exams) == 0 {
		fmt.Fprintln(w, faint("No examinations scheduled"))
		return
	}
	t := newTable(w, "Test", "Date", "Time", "Centre", "Marking scheme")
	for _, e := range exams {
		t.Append([]string{e.TestName, orDash(e.TestDate()), orDash(e.TimeDetail), orDash(e.TestCentre), orDash(e.MarkingScheme)})
	}
	t.Render()
	for _, e := range exams {
		if e.Syllabus != "" {
			fmt.Fprintf(w, "%s %s\n", heading(e.TestName), e.Syllabus)
		}
	}
}
