package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Fmt  FmtCmd  `cmd:"" help:"Format a YANG file to canonical style."`
	Lex  LexCmd  `cmd:"" help:"Show lexical tokens from a YANG file."`
	Tree TreeCmd `cmd:"" help:"Show the syntax tree of a YANG file."`
}
