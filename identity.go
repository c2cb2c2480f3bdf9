package contractkit

import (
	"fmt"
	"regexp"
	"strings"
)

// Identity names one version of a schema. Its String form, "name.version", is
// the value of the identity field inside schemas and fixtures.
type Identity struct {
	Name    string
	Version string
}

func (id Identity) String() string {
	if id.Name == "" || id.Version == "" {
		return ""
	}
	return id.Name + "." + id.Version
}

// IsZero reports whether id is unset.
func (id Identity) IsZero() bool { return id.Name == "" && id.Version == "" }

// Versions never contain a dot, so the last dot always separates name and version.
var (
	nameRe    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.\-]*$`)
	versionRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]*$`)
)

// NewIdentity validates name and version.
func NewIdentity(name, version string) (Identity, error) {
	if !nameRe.MatchString(name) || strings.HasSuffix(name, ".") {
		return Identity{}, fmt.Errorf("%w: name %q", ErrInvalidIdentity, name)
	}
	if !versionRe.MatchString(version) {
		return Identity{}, fmt.Errorf("%w: version %q", ErrInvalidIdentity, version)
	}
	return Identity{Name: name, Version: version}, nil
}

// ParseIdentity parses "name.version".
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	dot := strings.LastIndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return Identity{}, fmt.Errorf("%w: %q", ErrInvalidIdentity, s)
	}
	return NewIdentity(s[:dot], s[dot+1:])
}

// MustParseIdentity is like ParseIdentity but panics on error.
func MustParseIdentity(s string) Identity {
	id, err := ParseIdentity(s)
	if err != nil {
		panic(err)
	}
	return id
}
