package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort      = "Compile a configuration DSL file into YAML"
	MsgCheckShort     = "Validate a source file without writing output"
	MsgSyntaxShort    = "Describe the source language"
	MsgGenConfigShort = "Print the default settings file"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"

	// Version output
	MsgVersionFormat = "confc version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Status messages
	MsgSettingsWritten = "Settings written to %s"
	MsgSettingsExists  = "settings file %s already exists (use --force to replace it)"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Settings file to load after $XDG_CONFIG_HOME/confc/config.toml"
	MsgFlagDryRun    = "Print the YAML instead of writing it"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagEncodings = "Decoding candidates in probe order (e.g. utf-8,latin1)"
	MsgFlagLogFile   = "Also write logs to $XDG_STATE_HOME/confc/confc.log"
	MsgFlagWrite     = "Write the settings to the user config file instead of stdout"
	MsgFlagForce     = "Replace an existing settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
