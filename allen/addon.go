package allen

import (
	"cmp"
	"context"
	"slices"
)

// AddonVideo is one video of an addon chapter.
type AddonVideo struct {
	UniqueCode ID
	ModuleNo   ID
}

// DecodeAddonVideo ...
func DecodeAddonVideo(o Object) AddonVideo {
	return AddonVideo{
		UniqueCode: o.ID("UniqueCode"),
		ModuleNo:   o.ID("ModuleNo"),
	}
}

// Link resolves the playable link of the video. Every call hits the API.
func (v AddonVideo) Link(ctx context.Context, f Fetcher) (string, error) {
	return classURL(ctx, f, AddonPlayerPath, v.UniqueCode)
}

// Compare ...
func (v AddonVideo) Compare(o AddonVideo) int {
	return cmp.Or(
		v.UniqueCode.Compare(o.UniqueCode),
		v.ModuleNo.Compare(o.ModuleNo),
	)
}

// AddonChapter groups the videos of one chapter.
type AddonChapter struct {
	ChapterName string
	Videos      []AddonVideo
}

// DecodeAddonChapter ...
func DecodeAddonChapter(o Object) (AddonChapter, error) {
	list, err := o.Objects("listClass")
	if err != nil {
		return AddonChapter{}, err
	}
	videos := make([]AddonVideo, 0, len(list))
	for _, item := range list {
		videos = append(videos, DecodeAddonVideo(item))
	}
	return AddonChapter{
		ChapterName: o.String("ChapterName"),
		Videos:      videos,
	}, nil
}

// Compare ...
func (c AddonChapter) Compare(o AddonChapter) int {
	return cmp.Or(
		cmp.Compare(c.ChapterName, o.ChapterName),
		slices.CompareFunc(c.Videos, o.Videos, AddonVideo.Compare),
	)
}

// AddonClass is a supplementary subject organised into chapters.
type AddonClass struct {
	SubjectName string
	Chapters    []AddonChapter
}

// DecodeAddonClass ...
func DecodeAddonClass(o Object) (AddonClass, error) {
	list, err := o.Objects("listChapter")
	if err != nil {
		return AddonClass{}, err
	}
	chapters := make([]AddonChapter, 0, len(list))
	for _, item := range list {
		c, err := DecodeAddonChapter(item)
		if err != nil {
			return AddonClass{}, err
		}
		chapters = append(chapters, c)
	}
	return AddonClass{
		SubjectName: o.String("SubjectName"),
		Chapters:    chapters,
	}, nil
}

// Compare ...
func (a AddonClass) Compare(o AddonClass) int {
	return cmp.Or(
		cmp.Compare(a.SubjectName, o.SubjectName),
		slices.CompareFunc(a.Chapters, o.Chapters, AddonChapter.Compare),
	)
}
