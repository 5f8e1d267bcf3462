package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Move files to the trash instead of deleting them"
	MsgRevertShort     = "Restore the most recently trashed item"
	MsgHistoryShort    = "List the undo history"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgMissingOperand = "missing operand"
	MsgTryHelp        = "Try 'toss --help' for more information."
	MsgConfigWritten  = "Wrote default config to %s\n"
	MsgConfigExists   = "Config already exists at %s\n"

	// Version output
	MsgVersionFormat = "toss version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Explain what is being done; repeat for logs (-vv INFO, -vvv DEBUG, -vvvv TRACE)"
	MsgFlagRecursive   = "Remove directories and their contents recursively"
	MsgFlagList        = "List items which would be affected (dry run)"
	MsgFlagInteractive = "When to prompt before removals: never, once or always"
	MsgFlagPattern     = "Remove files whose name contains PATTERN; such removals are not recorded for revert"
	MsgFlagForce       = "Delete PATH permanently without moving it to the trash (repeatable)"
	MsgFlagDir         = "Remove empty directories"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/toss/config.toml)"
	MsgFlagSet         = "Override a setting for this run, as key=value (repeatable)"
	MsgFlagFormat      = "Output format: text, json or yaml"
	MsgFlagWrite       = "Write the config file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/revert-long.txt
	msgRevertLongRaw string
	MsgRevertLong    = strings.TrimSpace(msgRevertLongRaw)

	//go:embed msgs/history-long.txt
	msgHistoryLongRaw string
	MsgHistoryLong    = strings.TrimSpace(msgHistoryLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
