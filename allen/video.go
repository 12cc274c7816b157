package allen

import (
	"cmp"
	"context"
	"slices"
	"time"
)

// RecordedVideo is a recorded class.
type RecordedVideo struct {
	UniqueCode  ID
	SubjectName string
	// Date is the raw class date of the day the video was listed under.
	Date string
}

// DecodeRecordedVideo builds a RecordedVideo from one listClass entry and the
// ClassDate of its day.
func DecodeRecordedVideo(o Object, date string) RecordedVideo {
	return RecordedVideo{
		UniqueCode:  o.ID("UniqueCode"),
		SubjectName: o.String("SubjectName"),
		Date:        date,
	}
}

// Link resolves the playable link of the recording. Every call hits the API.
func (v RecordedVideo) Link(ctx context.Context, f Fetcher) (string, error) {
	return classURL(ctx, f, RecordingPlayerPath, v.UniqueCode)
}

// RecordingDate returns the date in DateLayout, or "" when Date is not a date.
func (v RecordedVideo) RecordingDate() string {
	return formatDate(v.Date)
}

// Compare orders videos field by field.
func (v RecordedVideo) Compare(o RecordedVideo) int {
	return cmp.Or(
		v.UniqueCode.Compare(o.UniqueCode),
		cmp.Compare(v.SubjectName, o.SubjectName),
		cmp.Compare(v.Date, o.Date),
	)
}

// LiveClass is a scheduled live class.
type LiveClass struct {
	ClassStart  string
	ClassEnd    string
	UniqueCode  ID
	SubjectName string
	// RemainingTime is the number of seconds until the class starts, never negative.
	RemainingTime int
}

// DecodeLiveClass ...
func DecodeLiveClass(o Object) (LiveClass, error) {
	remaining, err := o.OptionalInt("RemainingTime")
	if err != nil {
		return LiveClass{}, err
	}
	if remaining < 0 {
		return LiveClass{}, outOfRange("RemainingTime", remaining)
	}
	return LiveClass{
		ClassStart:    o.String("ClassStart"),
		ClassEnd:      o.String("ClassEnd"),
		UniqueCode:    o.ID("UniqueCode"),
		SubjectName:   o.String("SubjectName"),
		RemainingTime: remaining,
	}, nil
}

// Remaining returns RemainingTime as a duration.
func (l LiveClass) Remaining() time.Duration {
	return time.Duration(l.RemainingTime) * time.Second
}

// Compare orders live classes field by field.
func (l LiveClass) Compare(o LiveClass) int {
	return cmp.Or(
		cmp.Compare(l.ClassStart, o.ClassStart),
		cmp.Compare(l.ClassEnd, o.ClassEnd),
		l.UniqueCode.Compare(o.UniqueCode),
		cmp.Compare(l.SubjectName, o.SubjectName),
		cmp.Compare(l.RemainingTime, o.RemainingTime),
	)
}

// LiveClassDay groups the live classes held on one day.
type LiveClassDay struct {
	Day     string
	Date    string
	Classes []LiveClass
}

// DecodeLiveClassDay ...
func DecodeLiveClassDay(o Object) (LiveClassDay, error) {
	list, err := o.Objects("listClass")
	if err != nil {
		return LiveClassDay{}, err
	}
	classes := make([]LiveClass, 0, len(list))
	for _, item := range list {
		l, err := DecodeLiveClass(item)
		if err != nil {
			return LiveClassDay{}, err
		}
		classes = append(classes, l)
	}
	return LiveClassDay{
		Day:     o.String("ClassDay"),
		Date:    o.String("ClassDate"),
		Classes: classes,
	}, nil
}

// Compare orders days by label, date, then their classes.
func (d LiveClassDay) Compare(o LiveClassDay) int {
	return cmp.Or(
		cmp.Compare(d.Day, o.Day),
		cmp.Compare(d.Date, o.Date),
		slices.CompareFunc(d.Classes, o.Classes, LiveClass.Compare),
	)
}

// classURL posts a unique code to a player endpoint and returns ClassURL.
// The recording player nests its answer one level deeper, under data.data.
func classURL(ctx context.Context, f Fetcher, path string, uniqueCode ID) (string, error) {
	p, err := f.FetchJSON(ctx, Request{
		Path: path,
		Body: map[string]interface{}{"UniqueCode": uniqueCode},
	})
	if err != nil {
		return "", err
	}
	data, err := p.Object()
	if err != nil {
		return "", err
	}
	if link := data.String("ClassURL"); link != "" {
		return link, nil
	}
	if inner, err := data.Object(envelopeData); err == nil {
		if link := inner.String("ClassURL"); link != "" {
			return link, nil
		}
	}
	return "", p.Invalid(missing("ClassURL"))
}
