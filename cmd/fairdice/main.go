package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"HCL config file" default:"fairdice.hcl" type:"path"`
	LogLevel string           `help:"Diagnostic log level (debug, info, warn, error)"`
	LogFile  string           `help:"Write diagnostic logs to a file instead of stderr" type:"path"`
	NoColor  bool             `help:"Disable styled output"`

	Play   PlayCmd   `cmd:"" default:"withargs" help:"Play a match against the computer (default)"`
	Table  TableCmd  `cmd:"" help:"Print the probability table for a dice set"`
	Verify VerifyCmd `cmd:"" help:"Check disclosed values against published HMACs"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairdice"),
		kong.Description("Provably fair non-transitive dice against the computer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(&cli, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fairdice: %v\n", err)
		os.Exit(exitUsage)
	}
	defer app.Close()

	if err := ctx.Run(app); err != nil {
		app.Close()
		os.Exit(report(os.Stderr, err))
	}
}
