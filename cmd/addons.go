package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/cmd/prompt"
	"github.com/allen-go/allen/internal/loader"
)

var withLinks bool

var addonsCmd = &cobra.Command{
	Use:   "addons",
	Short: "List addon classes by subject and chapter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		var classes []allen.AddonClass
		if err := loader.Run(l, "[ Loading addon classes... ]", func() error {
			classes, err = client.AddonClasses(ctx)
			return err
		}); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !withLinks || len(classes) == 0 {
			printAddonClasses(out, classes)
			return nil
		}

		index, err := prompt.SelectAddonClass(classes)
		if err != nil {
			return err
		}
		class := classes[index]
		videos := addonVideos(class)

		links, errs := resolveLinks(ctx, len(videos), cfg.Concurrency, func(ctx context.Context, i int) (string, error) {
			return videos[i].Link(ctx, client)
		})
		if err := ctx.Err(); err != nil {
			return err
		}

		printAddonLinks(out, class, links, errs)
		return nil
	},
}

func init() {
	addonsCmd.Flags().BoolVar(&withLinks, "links", false, "pick a subject and resolve the links of its videos")
	rootCmd.AddCommand(addonsCmd)
}

func addonVideos(c allen.AddonClass) []allen.AddonVideo {
	var videos []allen.AddonVideo
	for _, ch := range c.Chapters {
		videos = append(videos, ch.Videos...)
	}
	return videos
}

func printAddonClasses(w io.Writer, classes []allen.AddonClass) {
	if len(classes) == 0 {
		fmt.Fprintln(w, faint("No addon classes"))
		return
	}
	for _, c := range classes {
		fmt.Fprintln(w, heading(c.SubjectName))
		for _, ch := range c.Chapters {
			fmt.Fprintf(w, "  %s %s\n", ch.ChapterName, faint(fmt.Sprintf("(%d videos)", len(ch.Videos))))
		}
	}
}

// printAddonLinks expects links and errs in addonVideos order.
func printAddonLinks(w io.Writer, c allen.AddonClass, links []string, errs []error) {
	fmt.Fprintln(w, heading(c.SubjectName))
	i := 0
	for _, ch := range c.Chapters {
		fmt.Fprintln(w, ch.ChapterName)
		for _, v := range ch.Videos {
			printLink(w, "Module "+orDash(v.ModuleNo.String()), links[i], errs[i])
			i++
		}
	}
}
