package main

import (
	"fmt"

	"github.com/storacha/go-md5auth/auth"
)

type verifyCommand struct {
	Auth string `long:"auth" required:"true" value-name:"CONFIG" description:"md5:hash=<hex> or md5:file=<path>"`

	app *app
}

func (c *verifyCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	a, err := auth.Configure(c.Auth)
	if err != nil {
		return err
	}
	defer a.Teardown()

	pass, err := c.app.readPassphrase()
	if err != nil {
		return err
	}

	if !a.AuthenticateString(pass) {
		log.Infow("authentication failed", "backend", a.Name())
		return errMismatch
	}
	log.Infow("authenticated", "backend", a.Name())
	return nil
}
