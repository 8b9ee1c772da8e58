package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	browseGroup = &cobra.Group{
		ID:    "browse",
		Title: "Browsing",
	}
	dataGroup = &cobra.Group{
		ID:    "data",
		Title: "Catalog data",
	}
)

// newRootCmd builds the command tree. lookupEnv has the same signature as [os.LookupEnv].
func newRootCmd(lookupEnv func(string) (string, bool), in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{
		lookupEnv: lookupEnv,
		dataURL:   "",
		dataDir:   "",
	}
	rootCmd := &cobra.Command{
		Use:  "dharohar",
		Long: `Browse heritage monuments of India state by state from the Dharohar catalog data files.`,
		// main prints the error and exits non-zero.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&opts.dataURL, "data-url", "",
		"base URL of the static site serving the data files (overrides DHAROHAR_DATA_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "",
		"read the data files from a local copy of the static site (overrides DHAROHAR_DATA_DIR)")

	rootCmd.AddGroup(browseGroup, dataGroup)
	rootCmd.AddCommand(
		newBrowseCmd(opts),
		newStatesCmd(opts),
		newMonumentsCmd(opts),
		newCheckCmd(opts),
	)
	return rootCmd
}

func main() {
	// A missing .env is fine, the environment and defaults are used instead.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.LookupEnv, os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
