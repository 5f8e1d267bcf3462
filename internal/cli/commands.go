package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/toss/internal/version"
	"github.com/arthur-debert/toss/pkg/commands/genconfig"
	"github.com/arthur-debert/toss/pkg/commands/history"
	"github.com/arthur-debert/toss/pkg/commands/revert"
	"github.com/arthur-debert/toss/pkg/ui"
)

func (r *runner) newRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert",
		Short: MsgRevertShort,
		Long:  MsgRevertLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, console, err := r.session(cmd)
			if err != nil {
				return err
			}
			if _, err := revert.Revert(s); err != nil {
				console.Problem(err)
				return ErrFailed
			}
			return nil
		},
	}
}

func (r *runner) newHistoryCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "history",
		Short: MsgHistoryShort,
		Long:  MsgHistoryLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			s, console, err := r.session(cmd)
			if err != nil {
				return err
			}
			return history.History(s, console, history.HistoryOptions{Format: f})
		},
	}

	cmd.Flags().StringVar(&format, "format", ui.FormatText.String(), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.Formats, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (r *runner) newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := r.newSession(cmd, false)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(s, genconfig.GenConfigOptions{
				Write: write,
				Path:  r.configPath(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !write:
				_, _ = fmt.Fprint(out, result.Content)
			case result.Written:
				_, _ = fmt.Fprintf(out, MsgConfigWritten, result.Path)
			default:
				_, _ = fmt.Fprintf(out, MsgConfigExists, result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
