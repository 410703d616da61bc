package wellknown

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Identity is the (package path, type name) pair a type is recognized by.
// Identities are compared by value. The zero Identity never matches a
// well-known one.
type Identity struct {
	Package string
	Name    string
}

// Of builds an identity.
func Of(pkg, name string) Identity {
	return Identity{Package: pkg, Name: name}
}

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool {
	return id.Package == "" && id.Name == ""
}

// String renders the identity the way go/types qualifies type names.
func (id Identity) String() string {
	if id.IsZero() {
		return "<none>"
	}
	if id.Package == "" {
		return id.Name
	}

	return id.Package + "." + id.Name
}

var (
	_ encoding.TextUnmarshaler = (*Identity)(nil)
	_ encoding.TextMarshaler   = Identity{}
)

// UnmarshalText parses an identity.
//
// Expected forms:
//
//	"pkg/path".Name
//	pkg/path.Name
//
// The unquoted form splits at the last dot: type names never contain one.
func (id *Identity) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty identity")
	}

	var pkg, name string
	if strings.HasPrefix(s, `"`) {
		end := strings.Index(s[1:], `"`)
		if end < 0 {
			return fmt.Errorf("unterminated quoted package in identity: %q", s)
		}
		end++

		pkg = s[1:end]
		rest := s[end+1:]
		if !strings.HasPrefix(rest, ".") {
			return fmt.Errorf("identity must have a name after the quoted package: %q", s)
		}
		name = rest[1:]
	} else {
		dot := strings.LastIndexByte(s, '.')
		if dot < 0 {
			return fmt.Errorf("identity must be qualified with a package path: %q", s)
		}
		pkg, name = s[:dot], s[dot+1:]
	}

	if pkg == "" {
		return fmt.Errorf("package cannot be empty in identity: %q", s)
	}
	if !isIdent(name) {
		return fmt.Errorf("invalid type name %q in identity %q", name, s)
	}

	id.Package = pkg
	id.Name = name
	return nil
}

// MarshalText renders the quoted form, which survives any package path.
func (id Identity) MarshalText() ([]byte, error) {
	if id.Package == "" {
		return nil, errors.New("cannot marshal Identity: empty Package")
	}
	if id.Name == "" {
		return nil, errors.New("cannot marshal Identity: empty Name")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(id.Package)
	b.WriteString(`".`)
	b.WriteString(id.Name)

	return []byte(b.String()), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
