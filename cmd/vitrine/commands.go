package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vitrine/internal/adapter"
	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/view"
)

func newListCmd(a *app) *cobra.Command {
	var (
		search string
		sortBy string
		desc   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print artworks matching a search, sorted",
		Example: `
vitrine list --search monet
vitrine list --sort artist --desc
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := view.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			p := view.ListParams{Query: search, Key: key, Direction: view.Ascending}
			if desc {
				p.Direction = view.Descending
			}

			coll, err := a.collator()
			if err != nil {
				return err
			}
			raw, err := a.loadCollection(cmd)
			if err != nil {
				return err
			}

			v := view.DeriveList(raw, p, coll)
			printer := adapter.NewPrinter(cmd.OutOrStdout())
			if err := printer.Artworks(v.Items); err != nil {
				return err
			}
			if v.Len() == 0 && search != "" {
				if s := view.Suggest(raw, search, 3); len(s) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "\nDid you mean: %q\n", s)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only titles or artists containing this text")
	cmd.Flags().StringVar(&sortBy, "sort", "title", "sort key: title or artist")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func newGalleryCmd(a *app) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print artworks in the chosen categories, in collection order",
		Example: `
vitrine gallery
vitrine gallery --category Painting --category Print
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.loadCollection(cmd)
			if err != nil {
				return err
			}
			p := view.GalleryParams{Categories: view.NewCategorySet(categories...)}
			v := view.DeriveGallery(raw, p)
			return adapter.NewPrinter(cmd.OutOrStdout()).Gallery(v.Items, func(art domain.ArtworkSummary) (string, bool) {
				return a.viewer.ImageURL(art, artic.GalleryImageWidth)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "artwork type to include (repeatable)")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the artwork types in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.loadCollection(cmd)
			if err != nil {
				return err
			}
			return adapter.NewPrinter(cmd.OutOrStdout()).Categories(view.Categories(raw), view.CategoryCounts(raw))
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var openImage, openPage bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one artwork",
		Example: `
vitrine show 27992
vitrine show 27992 --image
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid artwork id %q", args[0])
			}

			d, err := a.collection.Detail(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrArtworkNotFound) {
					return fmt.Errorf("artwork %d not found", id)
				}
				return err
			}

			imageURL, _ := a.viewer.ImageURL(d.ArtworkSummary, artic.DetailImageWidth)
			if err := adapter.NewPrinter(cmd.OutOrStdout()).Detail(d, imageURL, artic.WebURL(id)); err != nil {
				return err
			}

			if openImage {
				if err := a.viewer.OpenImage(d.ArtworkSummary, artic.DetailImageWidth); err != nil {
					return err
				}
			}
			if openPage {
				return a.viewer.OpenPage(id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&openImage, "image", false, "open the image in the browser")
	cmd.Flags().BoolVar(&openPage, "web", false, "open the museum web page in the browser")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// works without a readable config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := adapter.SaveConfig(adapter.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.resolvedConfigPath())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return defaultConfigPath()
}

func defaultConfigPath() string {
	return filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
}
