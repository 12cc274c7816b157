package cmd

import (
	"context"
	"io"
	"os"

	"github.com/gammazero/workerpool"

	"github.com/allen-go/allen/internal/pkg/logger"
	"github.com/allen-go/allen/internal/pkg/progressbar"
)

var progressOut io.Writer = os.Stderr

// resolveLinks calls link for every index in 0..n-1 with at most concurrency
// calls in flight. Failures are reported per index.
func resolveLinks(ctx context.Context, n, concurrency int, link func(context.Context, int) (string, error)) ([]string, []error) {
	links := make([]string, n)
	errs := make([]error, n)

	bar := progressbar.New(n, "[ Resolving links ]", progressOut).Start()
	defer bar.Finish()

	wp := workerpool.New(concurrency)
	for i := 0; i < n; i++ {
		i := i
		wp.Submit(func() {
			defer bar.Increment()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			links[i], errs[i] = link(ctx, i)
			if errs[i] != nil {
				logger.Warnf("Resolve link %d: %v", i, errs[i])
			}
		})
	}
	wp.StopWait()
	return links, errs
}
