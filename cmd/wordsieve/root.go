package main

import (
	"github.com/spf13/cobra"

	"wordsieve/internal/wordlist"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags filterFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "wordsieve --path <wordlist> --outpath <file> [--cutoff N]",
		Short: "Filter a tab-delimited frequency wordlist down to pure words",
		Long: "wordsieve reads a tab-delimited wordlist whose second field is a word and whose\n" +
			"last field is its frequency. Words with frequency >= cutoff that contain only\n" +
			"letters and underscores are written to the output file, one per line.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			logger, err := runLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts, err := wordlist.OptionsFromConfig(cfg)
			if err != nil {
				return err
			}
			summary, err := wordlist.Run(cmd.Context(), opts, logger)
			if err != nil {
				return err
			}
			if flags.summary {
				printSummary(cmd.OutOrStdout(), opts, summary)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.Flags().StringVar(&flags.path, "path", "", "Path to the input wordlist")
	rootCmd.Flags().StringVar(&flags.outPath, "outpath", "", "Path to the output file (created or overwritten)")
	rootCmd.Flags().Int64Var(&flags.cutoff, "cutoff", wordlist.DefaultCutoff, "Minimum frequency (inclusive) a word needs to be kept")
	rootCmd.Flags().BoolVar(&flags.asciiOnly, "ascii-only", false, "Only accept ASCII letters and underscores")
	rootCmd.Flags().StringVar(&flags.encoding, "encoding", "utf-8", "Text encoding of the input and output files")
	rootCmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a table of line counts after filtering")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "console", "Log format (console or json)")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
