package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/loader"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "List upcoming live classes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		var days []allen.LiveClassDay
		if err := loader.Run(l, "[ Loading live classes... ]", func() error {
			days, err = client.LiveClasses(ctx)
			return err
		}); err != nil {
			return err
		}

		printLiveClasses(cmd.OutOrStdout(), days)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(liveCmd)
}

func printLiveClasses(w io.Writer, days []allen.LiveClassDay) {
	if len(days) == 0 {
		fmt.Fprintln(w, faint("No live classes scheduled"))
		return
	}
	for _, d := range days {
		fmt.Fprintln(w, heading(d.Day), faint(d.Date))
		if len(d.Classes) == 0 {
			fmt.Fprintln(w, faint("  no classes"))
			continue
		}
		t := newTable(w, "Subject", "Start", "End", "Code", "Starts")
		for _, c := range d.Classes {
			t.Append([]string{c.SubjectName, orDash(c.ClassStart), orDash(c.ClassEnd), c.UniqueCode.String(), remaining(c.Remaining())})
		}
		t.Render()
	}
}
