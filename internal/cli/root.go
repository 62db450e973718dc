// Package cli provides the dtsdoc command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/utils"
)

// rootFlags holds values bound to command flags
type rootFlags struct {
	config     Config
	configPath string
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the dtsdoc command
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{config: *DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "dtsdoc [input...]",
		Short: "Generate a Markdown API document from @doc declarations in .d.ts files",
		Long: `dtsdoc reads TypeScript declaration files, keeps the interfaces and type
aliases whose last JSDoc block carries @doc and renders them as Markdown tables.

Inputs may be files, directories or glob patterns relative to --root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, flags, args)
			if err != nil {
				return report(cmd, flags.config.Verbose, err)
			}
			return runConfig(cmd, config)
		},
	}

	cmd.Flags().StringVarP(&flags.config.Output, "output", "o", "", "Document path; a directory gets api.md (default <root>/doc/api.md)")
	cmd.Flags().BoolVar(&flags.config.Overwrite, "overwrite", flags.config.Overwrite, "Replace an existing document")
	cmd.Flags().BoolVar(&flags.config.EnableEscape, "escape", false, "Escape | in type and description cells")
	cmd.Flags().StringVar(&flags.config.Locale, "locale", flags.config.Locale, "Document labels: zh or en")
	cmd.Flags().StringVar(&flags.config.Root, "root", "", "Project root inputs must live under (default working directory)")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&flags.config.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&flags.config.Debug, "debug", false, "Also log why declarations are skipped")
	cmd.Flags().BoolVarP(&flags.config.Quiet, "quiet", "q", false, "Only print errors")
	cmd.Flags().BoolVar(&flags.config.Clean, "clean", false, "Remove the generated document and exit")

	return cmd
}

// resolveConfig merges the config file, flags and arguments. Flags set on
// the command line win over the file.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, args []string) (Config, error) {
	config := flags.config
	if len(args) > 0 {
		config.Input = append(StringList{}, args...)
	}

	if flags.configPath == "" {
		return config, nil
	}

	fileConfig, err := LoadConfigFile(flags.configPath, nil)
	if err != nil {
		return config, err
	}

	changed := cmd.Flags().Changed
	if len(args) == 0 {
		config.Input = fileConfig.Input
	}
	if !changed("output") {
		config.Output = fileConfig.Output
	}
	if !changed("overwrite") {
		config.Overwrite = fileConfig.Overwrite
	}
	if !changed("escape") {
		config.EnableEscape = fileConfig.EnableEscape
	}
	if !changed("locale") {
		config.Locale = fileConfig.Locale
	}
	if !changed("root") {
		config.Root = fileConfig.Root
	}

	return config, nil
}

// runConfig runs one generation and reports the outcome
func runConfig(cmd *cobra.Command, config Config) error {
	var diagnostics *utils.DiagnosticSystem
	switch {
	case config.Quiet:
		diagnostics = utils.NewQuietDiagnostics()
	case config.Debug:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticDebug)
	case config.Verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	diagnostics.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !config.Clean {
		diagnostics.Header("generating API document")
	}

	summary, err := NewGenerator(diagnostics).Run(config)
	if err != nil {
		return report(cmd, config.Verbose, err)
	}

	if !config.Quiet {
		newCommandReporter(cmd, config.Verbose).ReportSuccess(summary)
	}
	return nil
}

// report prints err. Configuration problems are warnings and do not fail
// the build; everything else is returned.
func report(cmd *cobra.Command, verbose bool, err error) error {
	reporter := newCommandReporter(cmd, verbose)

	if errors.HasCode(err, errors.ConfigurationErrorCode) {
		reporter.ReportWarning(err.Error())
		if docErr, ok := errors.AsDocError(err); ok {
			for _, suggestion := range docErr.Suggestions() {
				reporter.ReportWarning(suggestion)
			}
		}
		return nil
	}

	reporter.ReportError(err)
	return err
}
