package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.NewSentinel("catalog check failed")

func newStatesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "states",
		GroupID: dataGroup.ID,
		Short:   "List states",
		Long:    `Lists the states with the number of monuments found for each and the count stated in the data file.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			c := e.load(cmd.Context())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // padding
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tMONUMENTS\tSTATED")
			for _, s := range c.States() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", s.ID, s.Name, c.MonumentCount(s.ID), s.MonumentCount)
			}
			if err = tw.Flush(); err != nil {
				return errors.Wrap(err, "flush table")
			}
			return nil
		},
	}
}

func newMonumentsCmd(opts *options) *cobra.Command {
	var (
		stateID string
		typ     string
		search  string
	)
	cmd := &cobra.Command{
		Use:     "monuments",
		GroupID: dataGroup.ID,
		Short:   "List monuments",
		Long: `Lists monuments in load order, optionally narrowed to one state, one type, and a search term.

The type is matched exactly and case-insensitively. The search term matches part of the name, location, or
description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			c := e.load(cmd.Context())

			monuments := c.Monuments()
			if stateID != "" {
				if _, ok := c.State(stateID); !ok {
					e.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "state not in state list",
						slog.String("state_id", stateID))
				}
				monuments = c.MonumentsOf(stateID)
			}
			monuments = catalog.NewQuery(typ, search).Apply(monuments)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // padding
			_, _ = fmt.Fprintln(tw, "ID\tSTATE\tTYPE\tNAME\tLOCATION")
			for _, m := range monuments {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.State, m.Type, m.Name, m.Location)
			}
			if err = tw.Flush(); err != nil {
				return errors.Wrap(err, "flush table")
			}
			if len(monuments) == 0 {
				cmd.Println("No monuments found matching your criteria.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&stateID, "state", "", "only monuments of the state with this id")
	cmd.Flags().StringVar(&typ, "type", catalog.All, `only monuments of this type, "all" for every type`)
	cmd.Flags().StringVar(&search, "search", "", "only monuments whose name, location, or description contains this")
	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		GroupID: dataGroup.ID,
		Short:   "Check the data files",
		Long: `Loads every data file without falling back to the sample data and reports duplicate monument ids,
monuments of unknown states, and stated monument counts that differ from the data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			c, err := e.loader.Fetch(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "load catalog")
			}

			var problems []string
			for _, id := range c.DuplicateMonumentIDs() {
				problems = append(problems, fmt.Sprintf("duplicate monument id %q", id))
			}
			for _, m := range c.OrphanMonuments() {
				problems = append(problems, fmt.Sprintf("monument %q refers to unknown state %q", m.ID, m.State))
			}
			for _, s := range c.States() {
				if n := c.MonumentCount(s.ID); n != s.MonumentCount {
					problems = append(problems,
						fmt.Sprintf("state %q states %d monuments but has %d", s.ID, s.MonumentCount, n))
				}
			}

			cmd.Printf("%d states, %d monuments, types: %s\n",
				len(c.States()), len(c.Monuments()), strings.Join(c.Types(), ", "))
			for _, p := range problems {
				cmd.Println(p)
			}
			if len(problems) > 0 {
				return errors.Wrap(errCheckFailed, "check", slog.Int("problems", len(problems)))
			}
			cmd.Println("ok")
			return nil
		},
	}
}
