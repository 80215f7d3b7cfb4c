package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/confc/internal/version"
	"github.com/arthur-debert/confc/pkg/config"
	"github.com/arthur-debert/confc/pkg/core"
	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/filesystem"
	"github.com/arthur-debert/confc/pkg/logging"
	"github.com/arthur-debert/confc/pkg/paths"
	"github.com/arthur-debert/confc/pkg/topics"
	"github.com/arthur-debert/confc/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the values of the persistent flags
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
	encodings  []string
	logFile    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:     "confc <input> [output]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts, args, dryRun)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringSliceVar(&opts.encodings, "encodings", nil, MsgFlagEncodings)
	rootCmd.PersistentFlags().BoolVar(&opts.logFile, "log-file", false, MsgFlagLogFile)

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if mgr, err := newTopicManager(); err == nil {
		mgr.Install(rootCmd)
	}

	return rootCmd
}

// RenderError reports a failed command on the command's error stream in
// the format selected by --format.
func RenderError(cmd *cobra.Command, err error) {
	format, _ := cmd.PersistentFlags().GetString("format")
	f, perr := ui.ParseFormat(format)
	if perr != nil {
		f = ui.FormatAuto
	}

	out := cmd.ErrOrStderr()
	r, rerr := ui.NewRenderer(f, out)
	if rerr != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	_ = r.RenderError(err)

	if errors.GetErrorCode(err) == errors.ErrUnknown && f != ui.FormatJSON {
		fmt.Fprintf(out, "Run '%s --help' for usage.\n", cmd.Root().Name())
	}
}

// settings resolves the layered settings, applying flags that were set
func (o *globalOptions) settings(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("encodings") {
		overrides["input.encodings"] = o.encodings
	}
	if cmd.Flags().Changed("log-file") {
		overrides["logging.file"] = o.logFile
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Logging.File && !o.logFile {
		logging.SetupLogger(o.verbosity, true)
	}
	return cfg, nil
}

func (o *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	f, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(f, w)
}

func compileOptions(cfg *config.Config, input, output string) (core.CompileOptions, error) {
	encodings, err := cfg.Candidates()
	if err != nil {
		return core.CompileOptions{}, err
	}
	mode, err := cfg.FileMode()
	if err != nil {
		return core.CompileOptions{}, err
	}
	if output == "" {
		output = cfg.Output.DefaultPath
	}
	return core.CompileOptions{
		InputPath:  input,
		OutputPath: output,
		Encodings:  encodings,
		FileMode:   mode,
	}, nil
}

func runCompile(cmd *cobra.Command, opts *globalOptions, args []string, dryRun bool) error {
	logger := logging.GetLogger("cli.compile")

	cfg, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	r, err := opts.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var output string
	if len(args) > 1 {
		output = args[1]
	}
	copts, err := compileOptions(cfg, args[0], output)
	if err != nil {
		return err
	}
	copts.DryRun = dryRun

	result, err := core.Compile(copts)
	if err != nil {
		return err
	}

	logger.Info().
		Str("encoding", result.Encoding).
		Int("records", result.Document.Len()).
		Bool("written", result.Written).
		Msg("Compilation finished")
	return r.RenderResult(result)
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			copts, err := compileOptions(cfg, args[0], "")
			if err != nil {
				return err
			}

			result, err := core.Check(copts)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

// newTopicManager loads the built-in help topics, rendering markdown with
// glamour when stdout is a terminal.
func newTopicManager() (*topics.Manager, error) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	return topics.New(topics.Builtin(), topics.Options{Renderer: renderer})
}

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: MsgSyntaxShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := newTopicManager()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
			}
			return mgr.Show(cmd.OutOrStdout(), "syntax")
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateDefault()
			if err != nil {
				return err
			}
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := paths.UserConfigFile()
			fsys := filesystem.NewOS()
			if _, err := fsys.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrFileWrite, MsgSettingsExists, path).WithDetail("path", path)
			}
			if err := fsys.MkdirAll(paths.ConfigDir(), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", paths.ConfigDir())
			}
			if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgSettingsWritten+"\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
