package progressbar

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
)

// New provides a counting progressbar for total items written to w.
// Call Start before use and Finish once all items are done.
func New(total int, prefix string, w io.Writer) *pb.ProgressBar {
	bar := pb.New(total)
	bar.SetRefreshRate(200 * time.Millisecond)
	bar.SetTemplate(pb.Simple)
	bar.SetWriter(w)
	bar.Set("prefix", prefix+" ")
	return bar
}
