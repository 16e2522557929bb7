package dotinstall

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotinstall/internal/version"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/installer"
	"github.com/arthur-debert/dotinstall/pkg/locator"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/output"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRemote builds the reader used to validate the project remote
var newRemote = func(name string) locator.RemoteReader {
	return locator.GitRemote{Name: name}
}

type rootOptions struct {
	verbosity   int
	dryRun      bool
	project     string
	configFile  string
	projectName string
	platform    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotinstall",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{
				Verbosity: opts.verbosity,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.projectName, "project-name", "", MsgFlagProjectName)

	// Install flags
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	rootCmd.Flags().StringVarP(&opts.project, "project", "p", "", MsgFlagProject)
	rootCmd.Flags().StringVar(&opts.platform, "platform", "", MsgFlagPlatform)

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if opts.projectName != "" {
		overrides["project.name"] = opts.projectName
	}
	return config.Load(config.LoadOptions{
		File:      opts.configFile,
		Overrides: overrides,
	})
}

func runInstall(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cmd.install")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	platform, err := types.ParsePlatform(opts.platform)
	if err != nil {
		return err
	}

	home, err := paths.GetHomeDirectory()
	if err != nil {
		return err
	}

	mode := types.RunModeFor(opts.dryRun)
	out := cmd.OutOrStdout()
	reporter := output.NewTextReporter(out, home, output.ShouldColor(out))

	logger.Info().
		Bool("dryRun", opts.dryRun).
		Str("project", opts.project).
		Str("platform", platform.String()).
		Msg("Starting install")

	// The log file lives under $HOME too, so it is only opened once the
	// project and file set are known good, and never in dry-run.
	var logFile string
	validated := func(root *types.ProjectRoot) {
		if mode.IsDryRun() {
			return
		}
		if path, err := logging.AttachLogFile(); err == nil {
			logFile = path
		}
	}

	summary, err := installer.Run(installer.Options{
		ExplicitPath: opts.project,
		Home:         home,
		Config:       cfg,
		Platform:     platform,
		Mode:         mode,
		Remote:       newRemote(cfg.Project.Remote),
		Reporter:     output.Tee{reporter, output.LogReporter{Logger: logging.GetLogger("actions")}},
		Validated:    validated,
	})
	if err != nil {
		return err
	}

	printSummary(out, reporter, summary, home, logFile)
	return nil
}

func printSummary(out io.Writer, reporter *output.TextReporter, s *installer.Summary, home, logFile string) {
	fmt.Fprintln(out)

	root := paths.Tildify(s.Root.Path, home)
	if s.Mode.IsDryRun() {
		reporter.Done(fmt.Sprintf(MsgDryRunFormat, len(s.Installed), len(s.Linked), root))
	} else {
		reporter.Done(fmt.Sprintf(MsgDoneFormat, len(s.Installed), len(s.Linked), root))
	}

	if s.BackupDir != "" {
		fmt.Fprintf(out, MsgBackupFormat+"\n", paths.Tildify(s.BackupDir, home))
	} else {
		fmt.Fprintln(out, MsgNoBackup)
	}

	if logFile != "" {
		fmt.Fprintf(out, MsgLogFileFormat+"\n", paths.Tildify(logFile, home))
	}

	if s.Mode.IsDryRun() {
		fmt.Fprintln(out, MsgDryRunNotice)
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := config.Render(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagFormat)
	return cmd
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: MsgLayoutShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(MsgLayoutDoc, output.ShouldColor(cmd.OutOrStdout())))
		},
	}
}

// renderMarkdown falls back to the raw text when glamour fails
func renderMarkdown(content string, color bool) string {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
