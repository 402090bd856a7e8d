// Command md5auth creates and checks MD5 passphrase configurations.
//
//	md5auth hash < passphrase             print an md5:hash=<hex> configuration
//	md5auth verify --auth md5:file=/etc/passhash < passphrase
//
// verify exits 0 when the passphrase matches, 1 when it does not and 2 when
// the configuration is invalid.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/jessevdk/go-flags"
	"github.com/storacha/go-md5auth/auth"
)

var log = logging.Logger("md5auth/cmd")

var errMismatch = errors.New("passphrase does not match")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type options struct {
	LogLevel string `long:"log-level" default:"error" description:"log level for all subsystems (debug, info, warn, error)"`
}

func main() {
	a := app{os.Stdin, os.Stdout, os.Stderr}
	os.Exit(a.run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "md5auth"

	if _, err := parser.AddCommand("hash",
		"Print the configuration for a passphrase",
		"Reads a passphrase from stdin and prints the md5:hash= configuration string for it.",
		&hashCommand{app: a}); err != nil {
		panic(err)
	}
	if _, err := parser.AddCommand("verify",
		"Check a passphrase against a configuration",
		"Reads a passphrase from stdin and checks it against the reference hash named by --auth.",
		&verifyCommand{app: a}); err != nil {
		panic(err)
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		lvl, err := logging.LevelFromString(opts.LogLevel)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		logging.SetAllLoggers(lvl)
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	var cerr *auth.ConfigError
	switch {
	case errors.As(err, &ferr) && ferr.Type == flags.ErrHelp:
		fmt.Fprintln(a.stdout, ferr.Message)
		return 0
	case errors.Is(err, errMismatch):
		return 1
	case errors.As(err, &cerr):
		// already reported by the auth package
		return 2
	default:
		fmt.Fprintf(a.stderr, "md5auth: %s\n", err)
		return 2
	}
}

// readPassphrase reads stdin to end of stream and strips a single trailing
// line ending.
func (a *app) readPassphrase() (string, error) {
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	s := string(b)
	if strings.HasSuffix(s, "\n") {
		s = strings.TrimSuffix(s[:len(s)-1], "\r")
	}
	return s, nil
}
