package dotinstall

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install shell configuration from a utility repository"
	MsgConfigShort     = "Print the effective configuration"
	MsgLayoutShort     = "Describe the expected repository layout"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "DRY RUN - no changes were made"
	MsgDoneFormat    = "Installed %d files and %d links from %s"
	MsgDryRunFormat  = "Would install %d files and %d links from %s"
	MsgBackupFormat  = "Backup: %s"
	MsgNoBackup      = "Nothing needed a backup"
	MsgLogFileFormat = "Log: %s"
	MsgVersionFormat = "dotinstall version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Show what would be done without changing anything"
	MsgFlagProject     = "Project root to install from (default: auto-detect)"
	MsgFlagConfig      = "Configuration file (default: $XDG_CONFIG_HOME/dotinstall/config.toml)"
	MsgFlagProjectName = "Expected project name (overrides project.name)"
	MsgFlagPlatform    = "Target platform: linux, macos or other (default: current)"
	MsgFlagFormat      = "Output format: toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/layout.md
	MsgLayoutDoc string
)

