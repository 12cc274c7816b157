package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"

	"github.com/allen-go/allen/allen"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
	alert   = color.New(color.FgYellow).SprintFunc()
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	return t
}

func mark(m int) string {
	if m == allen.MissingMark {
		return "-"
	}
	return strconv.Itoa(m)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// remaining renders the time left before a live class, to minute precision.
func remaining(d time.Duration) string {
	if d < time.Minute {
		return "starting now"
	}
	return "in " + durafmt.Parse(d.Truncate(time.Minute)).LimitFirstN(2).String()
}

func printLink(w io.Writer, label, link string, err error) {
	if err != nil {
		fmt.Fprintf(w, "  %s %s\n", label, alert("link unavailable: "+err.Error()))
		return
	}
	fmt.Fprintf(w, "  %s %s\n", label, success(link))
}
