package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Config  string           `help:"Path to HCL config file" default:"fairplay.hcl" type:"path"`
	NoColor bool             `help:"Disable styled output"`

	Play   PlayCmd   `cmd:"" default:"withargs" help:"Play one provably fair round"`
	Table  TableCmd  `cmd:"" help:"Print the results table for a move set"`
	Verify VerifyCmd `cmd:"" help:"Recompute an HMAC tag from a revealed key and move"`
	Audit  AuditCmd  `cmd:"" help:"Sample the move picker and report its distribution"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairplay"),
		kong.Description("Provably fair generalized rock-paper-scissors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// setupLogger configures the app logger on stderr so protocol output on
// stdout stays clean.
func setupLogger(debug bool, level string) *log.Logger {
	lvl := log.InfoLevel
	if parsed, err := log.ParseLevel(level); err == nil {
		lvl = parsed
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
	})
}
