// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// GlobalOptions apply to every command.
type GlobalOptions struct {
	LogLevel  string `long:"log-level" env:"LVMATH_LOG_LEVEL" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log verbosity"`
	LogFormat string `long:"log-format" env:"LVMATH_LOG_FORMAT" default:"text" choice:"text" choice:"json" description:"log encoding on stderr"`
}

type app struct {
	opts   GlobalOptions
	stdout io.Writer
	log    *logrus.Logger
}

// Run parses args (without the program name), executes the selected command
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, log: logrus.New()}
	a.log.SetOutput(stderr)

	p := a.parser()
	if _, err := p.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			if ferr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, ferr.Message)
				return 0
			}
			fmt.Fprintln(stderr, ferr.Message)
			return 1
		}
		a.log.WithError(err).Error("command failed")
		return 1
	}
	return 0
}

func (a *app) parser() *flags.Parser {
	p := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "lvmath"

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"encode", "Encode values as a big-endian payload",
			"Encodes the values with the codec of --kind and prints the payload as hex.\n" +
				"With --frame the payload is wrapped in a MessagePack frame first.\n" +
				"Put negative values after --.", &encodeCommand{app: a}},
		{"decode", "Decode a hex payload",
			"Decodes a raw payload of --kind values, or a MessagePack frame with --frame.", &decodeCommand{app: a}},
		{"matmul", "Multiply the matrices a and b of a YAML file",
			"Reads kind, a and b from --file and prints a*b one row per line.", &matmulCommand{app: a}},
		{"rotate", "Rotate a vector by a quaternion",
			"Builds the rotation from --euler roll,pitch,yaw or --axis x,y,z with --angle\n" +
				"and applies it to --vec.", &rotateCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := p.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(err)
		}
	}

	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := a.configureLogger(); err != nil {
			return err
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}
	return p
}

// configureLogger applies the global options once they are parsed.
func (a *app) configureLogger() error {
	level, err := logrus.ParseLevel(a.opts.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	a.log.SetLevel(level)

	switch a.opts.LogFormat {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		a.log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}
	return nil
}

func (a *app) logger(cmd string) *logrus.Entry {
	return a.log.WithField("cmd", cmd)
}
