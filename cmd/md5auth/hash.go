package main

import (
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/storacha/go-md5auth/auth"
	"github.com/storacha/go-md5auth/core/hash/hexdigest"
	"github.com/storacha/go-md5auth/core/hash/md5"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type hashCommand struct {
	Multibase bool `long:"multibase" description:"print the digest as a base16 multibase string"`
	JSON      bool `long:"json" description:"print every encoding of the digest as JSON"`

	app *app
}

type hashOutput struct {
	Algorithm string `json:"algorithm"`
	Code      uint64 `json:"code"`
	Hex       string `json:"hex"`
	Multibase string `json:"multibase"`
	Multihash string `json:"multihash"`
	Config    string `json:"config"`
}

func (c *hashCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	pass, err := c.app.readPassphrase()
	if err != nil {
		return err
	}

	mh, err := md5.Hasher.Sum([]byte(pass))
	if err != nil {
		return fmt.Errorf("hashing passphrase: %w", err)
	}
	var d md5.Digest
	copy(d[:], mh.Digest())

	mb, err := hexdigest.Format(d)
	if err != nil {
		return err
	}
	hx := hexdigest.Encode(d)
	log.Debugw("hashed passphrase", "bytes", len(pass))

	switch {
	case c.JSON:
		out, err := json.MarshalIndent(hashOutput{
			Algorithm: auth.Name,
			Code:      mh.Code(),
			Hex:       hx,
			Multibase: mb,
			Multihash: hex.EncodeToString(mh.Bytes()),
			Config:    auth.Name + ":hash=" + hx,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(c.app.stdout, string(out))
	case c.Multibase:
		fmt.Fprintln(c.app.stdout, mb)
	default:
		fmt.Fprintf(c.app.stdout, "%s:hash=%s\n", auth.Name, hx)
	}
	return nil
}
