package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/loader"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List recorded videos with their playable links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		var videos []allen.RecordedVideo
		if err := loader.Run(l, "[ Loading recorded videos... ]", func() error {
			videos, err = client.RecordedVideos(ctx)
			return err
		}); err != nil {
			return err
		}

		links, errs := resolveLinks(ctx, len(videos), cfg.Concurrency, func(ctx context.Context, i int) (string, error) {
			return videos[i].Link(ctx, client)
		})
		if err := ctx.Err(); err != nil {
			return err
		}

		printVideos(cmd.OutOrStdout(), videos, links, errs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(videosCmd)
}

func printVideos(w io.Writer, videos []allen.RecordedVideo, links []string, errs []error) {
	if len(videos) == 0 {
		fmt.Fprintln(w, faint("No recorded videos"))
		return
	}
	var last string
	for i, v := range videos {
		if d := v.RecordingDate(); d != last || i == 0 {
			fmt.Fprintln(w, heading(orDash(d)))
			last = d
		}
		printLink(w, v.SubjectName, links[i], errs[i])
	}
}
