package auth

import (
	"strings"
)

const prefix = Name + ":"

// Kind identifies the key of a configuration item.
type Kind int

const (
	// KindUnknown items are ignored.
	KindUnknown Kind = iota
	// KindHash is an inline hex digest, "hash=<hex>".
	KindHash
	// KindFile is a path to a file holding a hex digest, "file=<path>".
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindHash:
		return "hash"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Item is one comma separated element of a configuration string.
type Item struct {
	Kind Kind
	// Value is the text after "hash=" or "file=", or the whole element for
	// KindUnknown.
	Value string
}

// ParseSource splits a configuration string of the form
//
//	md5:hash=<hex>[,file=<path>...]
//
// into its items without validating or resolving them. It fails only when the
// "md5:" prefix or the arguments after it are missing.
func ParseSource(args string) ([]Item, error) {
	rest, ok := strings.CutPrefix(args, prefix)
	if !ok || rest == "" {
		return nil, newConfigError(ErrMissingArguments, "", nil)
	}

	var items []Item
	for _, elem := range strings.Split(rest, ",") {
		switch {
		case strings.HasPrefix(elem, "hash="):
			items = append(items, Item{KindHash, elem[len("hash="):]})
		case strings.HasPrefix(elem, "file="):
			items = append(items, Item{KindFile, elem[len("file="):]})
		default:
			items = append(items, Item{KindUnknown, elem})
		}
	}
	return items, nil
}
