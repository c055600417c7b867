package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Fetch .gitignore templates from github/gitignore"
	MsgRootLong  = `igno retrieves .gitignore templates from the github/gitignore
collection and merges them into a local ignore file. Fetched templates are
appended by default, with templates already present in the file skipped.

When no template types are given, an interactive fuzzy picker opens over
the list of available templates. The list is cached locally for a day.

Built-in synthetic templates resolve without a network call:
  --macos   macOS Desktop Services Store files
  --locks   package manager lock files`
	MsgVersionShort = "Print version information"

	// Status messages
	MsgAppendedFormat  = "Appended %s"
	MsgSkippingFormat  = "Skipping %s (already present)"
	MsgWroteFormat     = "Wrote templates to %s"
	MsgAvailableFormat = "%d templates available"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagList      = "List all available template types"
	MsgFlagOutput    = "Output path (defaults to .gitignore in the current directory)"
	MsgFlagOverwrite = "Overwrite the output instead of appending"
	MsgFlagDryRun    = "Print the template(s) instead of writing to disk"
	MsgFlagNoCache   = "Ignore cached type list and hit the API"
	MsgFlagCacheTTL  = "Cache time-to-live for the type list, in minutes"
)
