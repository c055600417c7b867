// Package cli wires the igno command line surface to the command
// packages under pkg/commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/igno/internal/version"
	"github.com/arthur-debert/igno/pkg/cache"
	"github.com/arthur-debert/igno/pkg/commands/fetch"
	"github.com/arthur-debert/igno/pkg/commands/listtypes"
	"github.com/arthur-debert/igno/pkg/config"
	"github.com/arthur-debert/igno/pkg/logging"
	"github.com/arthur-debert/igno/pkg/paths"
	"github.com/arthur-debert/igno/pkg/prompt"
	"github.com/arthur-debert/igno/pkg/registry"
	"github.com/arthur-debert/igno/pkg/style"
	"github.com/arthur-debert/igno/pkg/ui"
	"github.com/arthur-debert/igno/pkg/writer"
)

// DefaultCacheTTLMinutes is the type list cache freshness window (1 day)
const DefaultCacheTTLMinutes = 60 * 24

// DefaultOutput is the destination file when none is configured
const DefaultOutput = ".gitignore"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		listFlag  bool
		output    string
		overwrite bool
		dryRun    bool
		noCache   bool
		cacheTTL  int
	)

	rootCmd := &cobra.Command{
		Use:     "igno [TYPE...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New()

			cfg, err := config.Load(p.ConfigFilePath())
			if err != nil {
				return err
			}

			// Flag > config file > built-in default
			if !cmd.Flags().Changed("output") && cfg.Output != "" {
				output = cfg.Output
			}
			if !cmd.Flags().Changed("cache-ttl-minutes") && cfg.CacheTTLMinutes > 0 {
				cacheTTL = cfg.CacheTTLMinutes
			}
			ttl := time.Duration(cacheTTL) * time.Minute

			client := registry.NewClient(
				registry.NewHTTPClient("igno/"+version.Version),
				registry.WithTypesURL(cfg.TypesURL),
				registry.WithRawBaseURL(cfg.RawBaseURL),
			)
			store := cache.NewStore(p.CacheFilePath())

			if listFlag {
				return runList(cmd, client, store, noCache, ttl)
			}

			mode := writer.ModeAppend
			switch {
			case dryRun:
				mode = writer.ModeDryRun
			case overwrite:
				mode = writer.ModeOverwrite
			}

			result, err := fetch.Fetch(cmd.Context(), fetch.FetchOptions{
				Client:   client,
				Cache:    store,
				Selector: prompt.NewSelector(),
				Names:    args,
				NoCache:  noCache,
				TTL:      ttl,
				Output:   output,
				Mode:     mode,
				Out:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			report(cmd, result.Write)
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, MsgFlagList)
	rootCmd.Flags().StringVarP(&output, "output", "o", DefaultOutput, MsgFlagOutput)
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, MsgFlagNoCache)
	rootCmd.Flags().IntVar(&cacheTTL, "cache-ttl-minutes", DefaultCacheTTLMinutes, MsgFlagCacheTTL)
	rootCmd.MarkFlagsMutuallyExclusive("overwrite", "dry-run")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runList prints the available template types, one per line.
func runList(cmd *cobra.Command, client *registry.Client, store *cache.Store, noCache bool, ttl time.Duration) error {
	result, err := listtypes.ListTypes(cmd.Context(), listtypes.ListTypesOptions{
		Client:  client,
		Cache:   store,
		NoCache: noCache,
		TTL:     ttl,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format := ui.DetectFormat(os.Stdout); format == ui.FormatTerminal {
		header := fmt.Sprintf(MsgAvailableFormat, len(result.Types))
		fmt.Fprintln(out, style.Render("Muted", header, format))
	}
	for _, t := range result.Types {
		fmt.Fprintln(out, t)
	}
	return nil
}

// report prints the per-template outcome of a write.
func report(cmd *cobra.Command, result *writer.Result) {
	format := ui.DetectFormat(os.Stdout)

	switch result.Mode {
	case writer.ModeDryRun:
		// The templates themselves were the output.
	case writer.ModeOverwrite:
		msg := fmt.Sprintf(MsgWroteFormat, result.Path)
		fmt.Fprintln(cmd.OutOrStdout(), style.Render("Success", msg, format))
	case writer.ModeAppend:
		for _, name := range result.Skipped {
			msg := fmt.Sprintf(MsgSkippingFormat, name)
			fmt.Fprintln(cmd.ErrOrStderr(), style.Render("Warning", msg, format))
		}
		for _, name := range result.Appended {
			msg := fmt.Sprintf(MsgAppendedFormat, name)
			fmt.Fprintln(cmd.OutOrStdout(), style.Render("Success", msg, format))
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "igno version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
