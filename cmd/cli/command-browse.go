package main

import (
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/loader"
	"github.com/myrjola/dharohar/internal/render"
	"github.com/myrjola/dharohar/internal/terminal"
	"github.com/myrjola/dharohar/internal/view"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *options) *cobra.Command {
	var (
		clearScreen bool
		noProgress  bool
	)
	cmd := &cobra.Command{
		Use:     "browse",
		GroupID: browseGroup.ID,
		Short:   "Browse the catalog interactively",
		Long: `Loads the catalog once and starts an interactive session on the terminal.

When the data files can't be loaded a small built-in sample catalog is shown instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bar := progressbar.NewOptions(len(loader.DefaultResources.All()),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("Loading catalog"),
				progressbar.OptionSetWidth(40), //nolint:mnd // characters
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionSetVisibility(!noProgress),
			)
			e, err := opts.setup(cmd, loader.WithProgress(func(string) {
				_ = bar.Add(1)
			}))
			if err != nil {
				return err
			}
			bar.ChangeMax(len(e.loader.Resources().All()))

			c := e.load(cmd.Context())
			_ = bar.Finish()

			var renderOpts []render.Option
			if clearScreen {
				renderOpts = append(renderOpts, render.WithClearScreen())
			}
			r := render.NewText(cmd.OutOrStdout(), renderOpts...)
			ctrl := view.NewController(c, r, e.logger, e.cfg.SearchDelay)
			defer ctrl.Close()

			if err = terminal.NewSession(ctrl, r, e.logger).Run(cmd.Context(), cmd.InOrStdin()); err != nil {
				return errors.Wrap(err, "run session")
			}
			if err = r.Err(); err != nil {
				return errors.Wrap(err, "render")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearScreen, "clear", false, "clear the terminal before each view")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "don't show the loading progress bar")
	return cmd
}
