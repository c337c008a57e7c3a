package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bamorim/bindpls/internal/app"
)

var (
	version string
	commit  string
	date    string
)

func getVersion() string {
	if version == "" {
		return "dev"
	}
	if commit != "" {
		return fmt.Sprintf("%s (%s)", version, commit[:7])
	}
	return version
}

func main() {
	appCLI := &cli.App{
		Name:    "bindpls",
		Usage:   "Find a bindable TCP port or unix socket path",
		Version: getVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to config file"},
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug output"},
		},
		Commands: []*cli.Command{
			portCommand(),
			socketCommand(),
			configCommand(),
		},
	}

	if err := appCLI.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func portCommand() *cli.Command {
	return &cli.Command{
		Name:  "port",
		Usage: "Find a free TCP port, walking upward from a starting port",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Starting port (0 asks the OS)"},
			&cli.StringFlag{Name: "host", Usage: "Bind address to probe (default 127.0.0.1)"},
			&cli.IntFlag{Name: "stop", Usage: "Highest port to try"},
			&cli.IntSliceFlag{Name: "exclude", Usage: "Port to never return (repeatable)"},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1, Usage: "Number of ports to find"},
		},
		Action: func(c *cli.Context) error {
			req := app.PortRequest{
				Start:    c.Int("port"),
				StartSet: c.IsSet("port"),
				Host:     c.String("host"),
				Stop:     c.Int("stop"),
				Exclude:  c.IntSlice("exclude"),
				Count:    c.Int("count"),
			}
			ports, err := app.FindPorts(optionsFromContext(c), req)
			if err != nil {
				return exitForError(err)
			}
			for _, portNum := range ports {
				fmt.Fprintln(os.Stdout, portNum)
			}
			return nil
		},
	}
}

func socketCommand() *cli.Command {
	return &cli.Command{
		Name:  "socket",
		Usage: "Find a free unix socket path, numbering the name on conflicts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "Socket path to start from"},
			&cli.IntFlag{Name: "attempts", Usage: "Candidate budget before giving up"},
		},
		Action: func(c *cli.Context) error {
			req := app.SocketRequest{
				Path:     c.String("path"),
				Attempts: c.Int("attempts"),
			}
			path, err := app.FindSocket(optionsFromContext(c), req)
			if err != nil {
				return exitForError(err)
			}
			fmt.Fprintln(os.Stdout, path)
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "Show or modify configuration",
		ArgsUsage: "[KEY] [VALUE]",
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				lines, err := app.ConfigShow(optionsFromContext(c))
				if err != nil {
					return exitForError(err)
				}
				for _, line := range lines {
					fmt.Fprintln(os.Stdout, line)
				}
				return nil
			}
			key := c.Args().Get(0)
			if c.Args().Len() == 1 {
				value, err := app.ConfigGet(optionsFromContext(c), key)
				if err != nil {
					return exitForError(err)
				}
				fmt.Fprintln(os.Stdout, value)
				return nil
			}
			value := c.Args().Get(1)
			line, err := app.ConfigSet(optionsFromContext(c), key, value)
			if err != nil {
				return exitForError(err)
			}
			fmt.Fprintln(os.Stdout, line)
			return nil
		},
	}
}

func optionsFromContext(c *cli.Context) app.Options {
	return app.Options{
		ConfigPath: c.String("config"),
		Verbose:    c.Bool("verbose"),
	}
}

func exitForError(err error) error {
	if err == nil {
		return nil
	}
	var codeErr app.CodeError
	if errors.As(err, &codeErr) {
		return cli.Exit(codeErr.Error(), codeErr.Code)
	}
	return cli.Exit(err.Error(), 2)
}
