// Package auth authenticates passphrases against a configured MD5 reference
// hash.
//
// An Authenticator is created once from a configuration string and then only
// read, so it may be shared by goroutines as long as Teardown is not called
// concurrently with Authenticate.
package auth

import (
	"errors"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"github.com/storacha/go-md5auth/core/hash/hexdigest"
	"github.com/storacha/go-md5auth/core/hash/md5"
)

var log = logging.Logger("md5auth/auth")

// Name of the authentication method, also the configuration string prefix.
const Name = "md5"

// Backend is what a host needs from an authentication method.
type Backend interface {
	Name() string
	Authenticate(candidate []byte) bool
	Teardown()
}

var _ Backend = (*Authenticator)(nil)

// Authenticator holds a single reference hex digest. A nil *Authenticator is
// valid and rejects every candidate.
type Authenticator struct {
	reference string
}

// Configure resolves the reference digest from args, for example
// "md5:hash=900150983cd24fb0d6963f7d28e17f72" or "md5:file=/etc/passhash".
// Items are tried in order and the first one that yields a reference wins,
// later items are ignored. Configuration failures are logged once and returned
// as *ConfigError.
func Configure(args string, opts ...Option) (*Authenticator, error) {
	ref, err := resolve(args, opts)
	if err != nil {
		log.Errorf("error, %s.", err)
		return nil, err
	}
	return &Authenticator{reference: ref}, nil
}

func resolve(args string, opts []Option) (string, error) {
	cfg := authConfig{open: openFile}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return "", newConfigError(ErrInvalidOption, "", err)
		}
	}

	items, err := ParseSource(args)
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if item.Value == "" {
			continue
		}
		switch item.Kind {
		case KindHash:
			ref, err := hexdigest.Normalize(item.Value)
			if err != nil {
				return "", newConfigError(ErrInvalidHash, "", err)
			}
			return ref, nil
		case KindFile:
			return readReference(cfg.open, item.Value)
		default:
			log.Debugw("ignoring configuration item", "item", item.Value)
		}
	}

	return "", newConfigError(ErrMissingHash, "", nil)
}

// readReference reads the first 32 bytes of the file at path, regardless of
// line structure, and validates them as a hex digest.
func readReference(open Opener, path string) (string, error) {
	f, err := open(path)
	if err != nil {
		return "", newConfigError(ErrUnreadableFile, path, err)
	}
	defer f.Close()

	buf := make([]byte, hexdigest.Length)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", newConfigError(ErrUnreadableFile, path, err)
	}

	ref, err := hexdigest.Normalize(string(buf[:n]))
	if err != nil {
		return "", newConfigError(ErrInvalidFile, path, err)
	}
	return ref, nil
}

func (a *Authenticator) Name() string {
	return Name
}

// Reference returns the normalized reference digest, or "" when a is nil or
// torn down.
func (a *Authenticator) Reference() string {
	if a == nil {
		return ""
	}
	return a.reference
}

// Authenticate reports whether the MD5 digest of candidate equals the
// reference. A nil candidate never authenticates, an empty one is hashed like
// any other input.
func (a *Authenticator) Authenticate(candidate []byte) bool {
	if candidate == nil {
		return false
	}
	return a.match(candidate)
}

// AuthenticateString is Authenticate for text passphrases.
func (a *Authenticator) AuthenticateString(candidate string) bool {
	return a.match([]byte(candidate))
}

func (a *Authenticator) match(candidate []byte) bool {
	if a == nil || a.reference == "" {
		return false
	}
	return hexdigest.Equal(hexdigest.Encode(md5.Sum(candidate)), a.reference)
}

// Teardown releases the reference. It is safe to call more than once.
func (a *Authenticator) Teardown() {
	if a == nil {
		return
	}
	a.reference = ""
}
