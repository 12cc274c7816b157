package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jordic/goics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allen-go/allen/allen"
)

type decodedEvents []map[string]*goics.IcsNode

func (d *decodedEvents) ConsumeICal(c *goics.Calendar, err error) error {
	for _, e := range c.Events {
		*d = append(*d, e.Data)
	}
	return err
}

func TestWrite(t *testing.T) {
	exams := []allen.Examination{
		{TestName: "PHASE TEST 01", TestDay: "Wednesday", TestCentre: "Kota", MarkingScheme: "JEE MAIN. PATTERN",
			TimeDetail: "09:00 AM - 12:00 PM", Date: "2021-08-11T00:00:00"},
		{TestName: "PHASE TEST 02", TestDay: "Sunday", TimeDetail: "TBA", Date: "2021-08-15"},
		{TestName: "UNSCHEDULED", TestDay: "Monday", Date: "TBA"},
	}

	var buf bytes.Buffer
	Write(&buf, exams)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))

	var events decodedEvents
	require.NoError(t, goics.NewDecoder(strings.NewReader(out)).Decode(&events))
	require.Len(t, events, 2)

	assert.Equal(t, "PHASE TEST 01", events[0]["SUMMARY"].Val)
	assert.Equal(t, "Kota", events[0]["LOCATION"].Val)
	assert.Contains(t, events[0]["UID"].Val, "20210811-phase-test-01@")
	assert.Contains(t, events[0]["DTSTART"].Val, "T")

	assert.Equal(t, "PHASE TEST 02", events[1]["SUMMARY"].Val)
	assert.Equal(t, "20210815", events[1]["DTSTART"].Val)
	assert.Equal(t, "20210816", events[1]["DTEND"].Val)
	assert.Nil(t, events[1]["LOCATION"])
}

func TestExamHours(t *testing.T) {
	day := time.Date(2021, 8, 11, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		detail    string
		wantOK    bool
		wantStart int
		wantEnd   int
	}{
		{"09:00 AM - 12:00 PM", true, 9, 12},
		{"2:00 pm-5:00 pm", true, 14, 17},
		{"05:00 PM - 09:00 AM", false, 0, 0},
		{"Morning", false, 0, 0},
		{"", false, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.detail, func(t *testing.T) {
			start, end, ok := examHours(day, tc.detail)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.wantStart, start.Hour())
				assert.Equal(t, tc.wantEnd, end.Hour())
			}
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jee-enthuse-internal-test-01-paper-1", slug(" JEE ENTHUSE INTERNAL TEST-01-PAPER 1 "))
}

func TestWrite_DayFirstDate(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, []allen.Examination{
		{TestName: "PHASE TEST 03", TestDay: "Tuesday", Date: "10/08/2021"},
		{TestName: "PHASE TEST 04", TestDay: "Friday", Date: "08/13/2021"},
	})

	var events decodedEvents
	require.NoError(t, goics.NewDecoder(strings.NewReader(buf.String())).Decode(&events))
	require.Len(t, events, 1)
	assert.Equal(t, "PHASE TEST 03", events[0]["SUMMARY"].Val)
	assert.Equal(t, "20210810", events[0]["DTSTART"].Val)
}
