package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/toss/internal/version"
	"github.com/arthur-debert/toss/pkg/commands/remove"
	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/guards"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/metrics"
	"github.com/arthur-debert/toss/pkg/paths"
	"github.com/arthur-debert/toss/pkg/types"
	"github.com/arthur-debert/toss/pkg/ui"
	"github.com/arthur-debert/toss/pkg/ui/confirmations"
)

// ErrFailed is returned when items failed after their problems were printed
var ErrFailed = errors.New("one or more operations failed")

// Option customizes the environment commands run in
type Option func(*runner)

// WithPrivilegeCheck replaces the effective-uid check
func WithPrivilegeCheck(check guards.PrivilegeCheck) Option {
	return func(r *runner) { r.privileged = check }
}

// WithClock replaces time.Now for trash ids
func WithClock(now func() time.Time) Option {
	return func(r *runner) { r.now = now }
}

// WithWorkDir resolves relative paths against dir instead of the process
// working directory
func WithWorkDir(dir string) Option {
	return func(r *runner) { r.workDir = dir }
}

// runner holds global flag values and injected dependencies
type runner struct {
	verbosity  int
	configFile string
	settings   []string

	privileged guards.PrivilegeCheck
	now        func() time.Time
	workDir    string

	paths paths.Paths
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	initTemplateFormatting()

	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	var (
		recursive   bool
		list        bool
		interactive string
		pattern     string
		force       []string
		dir         bool
	)

	rootCmd := &cobra.Command{
		Use:     "toss [flags] [FILE...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}
			r.paths = p
			// the first -v only turns on notices
			logging.SetupLogger(max(r.verbosity-1, 0), p.LogFilePath())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(force) == 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n%s\n", ui.ProgramName, MsgMissingOperand, MsgTryHelp)
				return ErrFailed
			}

			mode, err := types.ParseInteractiveMode(interactive)
			if err != nil {
				return err
			}

			s, console, err := r.session(cmd)
			if err != nil {
				return err
			}

			failed := false
			if len(args) > 0 {
				result, err := remove.Remove(s, remove.RemoveOptions{
					Paths: args,
					Criteria: types.SelectionCriteria{
						Recursive:                recursive,
						Pattern:                  pattern,
						TreatEmptyDirAsRemovable: dir,
					},
					DryRun: list,
					Mode:   mode,
				})
				if err != nil {
					console.Problem(err)
					return ErrFailed
				}
				failed = result.Failed()
			}

			if len(force) > 0 {
				result := remove.Force(s, remove.ForceOptions{Paths: force, DryRun: list, Mode: mode})
				failed = failed || result.Failed()
			}

			if failed {
				return ErrFailed
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&r.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&r.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&r.settings, "set", nil, MsgFlagSet)

	// Removal flags
	flags := rootCmd.Flags()
	flags.BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	flags.BoolVarP(&list, "list", "l", false, MsgFlagList)
	flags.StringVarP(&interactive, "interactive", "i", string(types.InteractiveNever), MsgFlagInteractive)
	flags.StringVarP(&pattern, "pattern", "p", "", MsgFlagPattern)
	flags.StringArrayVarP(&force, "force", "f", nil, MsgFlagForce)
	flags.BoolVarP(&dir, "dir", "d", false, MsgFlagDir)

	_ = rootCmd.RegisterFlagCompletionFunc("interactive", cobra.FixedCompletions(types.InteractiveModes, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(r.newRevertCmd())
	rootCmd.AddCommand(r.newHistoryCmd())
	rootCmd.AddCommand(r.newGenConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// session resolves configuration and builds the command session. The default
// config file is written on first use.
func (r *runner) session(cmd *cobra.Command) (*session.Session, *ui.Console, error) {
	return r.newSession(cmd, true)
}

func (r *runner) newSession(cmd *cobra.Command, writeDefault bool) (*session.Session, *ui.Console, error) {
	if r.paths == nil {
		p, err := paths.New()
		if err != nil {
			return nil, nil, err
		}
		r.paths = p
	}

	fs := filesystem.NewOS()
	if writeDefault && r.configFile == "" {
		r.initConfig(fs)
	}

	overrides, err := config.ParseOverrides(r.settings)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(r.configPath(), overrides)
	if err != nil {
		return nil, nil, err
	}

	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), r.verbosity > 0)
	s := &session.Session{
		FS:         fs,
		WorkDir:    r.workDir,
		Paths:      r.paths,
		Config:     cfg,
		Output:     console,
		Confirmer:  confirmations.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), ui.ProgramName),
		Metrics:    metrics.New(),
		Privileged: r.privileged,
		Now:        r.now,
	}
	return s, console, nil
}

// initConfig writes the commented-out defaults when no config file exists.
// Failures are logged and never stop the command.
func (r *runner) initConfig(fs afero.Fs) {
	path := r.paths.ConfigFile()
	written, err := config.WriteDefaultConfig(fs, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not write default config")
		return
	}
	if written {
		log.Info().Str("path", path).Msg("Wrote default config")
	}
}

func (r *runner) configPath() string {
	if r.configFile != "" {
		return paths.ExpandHome(r.configFile)
	}
	return r.paths.ConfigFile()
}
