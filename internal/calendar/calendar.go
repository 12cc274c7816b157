// Package calendar exports the examination calendar as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jordic/goics"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/pkg/logger"
)

const (
	productID = "-//allen-go//exam calendar//EN"
	uidDomain = "allen-go"
)

var timeRange = regexp.MustCompile(`(?i)^\s*(\d{1,2}:\d{2}\s*[ap]m)\s*-\s*(\d{1,2}:\d{2}\s*[ap]m)\s*$`)

// Exams is an iCalendar emitter for a list of examinations.
type Exams []allen.Examination

// EmitICal builds one VEVENT per examination with a parseable date. Exams
// whose TimeDetail is an "hh:mm AM - hh:mm PM" range become timed events,
// the rest all-day events.
func (e Exams) EmitICal() goics.Componenter {
	c := goics.NewComponent()
	c.SetType("VCALENDAR")
	c.AddProperty("VERSION", "2.0")
	c.AddProperty("PRODID", productID)
	c.AddProperty("CALSCALE", "GREGORIAN")

	stamp := time.Now().UTC()
	for _, ex := range e {
		day, err := allen.ParseDate(ex.Date)
		if err != nil {
			logger.Warnf("Skipping exam %q with malformed date %q", ex.TestName, ex.Date)
			continue
		}

		s := goics.NewComponent()
		s.SetType("VEVENT")
		k, v := goics.FormatDateTimeField("DTSTAMP", stamp)
		s.AddProperty(k, v)
		s.AddProperty("UID", fmt.Sprintf("%s-%s@%s", day.Format("20060102"), slug(ex.TestName), uidDomain))

		if start, end, ok := examHours(day, ex.TimeDetail); ok {
			k, v = goics.FormatDateTimeField("DTSTART", start.UTC())
			s.AddProperty(k, v)
			k, v = goics.FormatDateTimeField("DTEND", end.UTC())
			s.AddProperty(k, v)
		} else {
			d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
			k, v = goics.FormatDateField("DTSTART", d)
			s.AddProperty(k, v)
			k, v = goics.FormatDateField("DTEND", d.AddDate(0, 0, 1))
			s.AddProperty(k, v)
		}

		s.AddProperty("SUMMARY", ex.TestName)
		if ex.TestCentre != "" {
			s.AddProperty("LOCATION", ex.TestCentre)
		}
		s.AddProperty("DESCRIPTION", description(ex))
		c.AddComponent(s)
	}
	return c
}

// Write encodes exams as an iCalendar document to w.
func Write(w io.Writer, exams []allen.Examination) {
	goics.NewICalEncode(w).Encode(Exams(exams))
}

func examHours(day time.Time, detail string) (time.Time, time.Time, bool) {
	m := timeRange.FindStringSubmatch(detail)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	from, err := clock(day, m[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := clock(day, m[2])
	if err != nil || !to.After(from) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func clock(day time.Time, s string) (time.Time, error) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
	t, err := time.Parse("03:04PM", s)
	if err != nil {
		t, err = time.Parse("3:04PM", s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func description(ex allen.Examination) string {
	var parts []string
	if ex.MarkingScheme != "" {
		parts = append(parts, "Marking scheme: "+ex.MarkingScheme)
	}
	if ex.TimeDetail != "" {
		parts = append(parts, "Time: "+ex.TimeDetail)
	}
	if ex.Syllabus != "" {
		parts = append(parts, "Syllabus: "+ex.Syllabus)
	}
	return strings.Join(parts, `\n`)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}), "-")
}
