package addrkey

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// ErrInvalidAddress matches every parse failure through errors.Is.
var ErrInvalidAddress = errors.New("invalid address")

// InvalidAddressError reports text that is not an acceptable IPv4 or IPv6 address.
type InvalidAddressError struct {
	Text   string
	Reason string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Text, e.Reason)
}

func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

func invalid(text, reason string) error {
	return &InvalidAddressError{Text: text, Reason: reason}
}

// Parser classifies text as an IPv4 or IPv6 address and produces its key.
// It either returns a definitive Address or an error, never a partial result.
type Parser interface {
	Parse(text string) (Address, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(text string) (Address, error)

func (f ParserFunc) Parse(text string) (Address, error) {
	return f(text)
}

var (
	// Strict accepts dotted-quad IPv4 and pure colon-hex IPv6 text only.
	// Embedded IPv4 forms such as "::ffff:1.2.3.4" and zoned addresses are rejected.
	Strict Parser = ParserFunc(parseStrict)

	// Unmapping accepts everything Strict does plus the embedded IPv4 forms, and
	// files IPv4-mapped IPv6 addresses ("::ffff:a.b.c.d" or "::ffff:aabb:ccdd")
	// under V4. Zoned addresses are still rejected.
	Unmapping Parser = ParserFunc(parseUnmapping)
)

// Parse parses text with the Strict parser.
func Parse(text string) (Address, error) {
	return Strict.Parse(text)
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(text string) Address {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return a
}

func parseNetip(text string) (netip.Addr, error) {
	if text == "" {
		return netip.Addr{}, invalid(text, "empty string")
	}
	ip, err := netip.ParseAddr(text)
	if err != nil {
		return netip.Addr{}, invalid(text, "not an IPv4 or IPv6 address")
	}
	if ip.Zone() != "" {
		return netip.Addr{}, invalid(text, "zoned addresses are not supported")
	}
	return ip, nil
}

func parseStrict(text string) (Address, error) {
	ip, err := parseNetip(text)
	if err != nil {
		return Address{}, err
	}
	if ip.Is6() && strings.Contains(text, ".") {
		return Address{}, invalid(text, "embedded IPv4 in IPv6 is not supported")
	}
	return FromNetip(ip), nil
}

func parseUnmapping(text string) (Address, error) {
	ip, err := parseNetip(text)
	if err != nil {
		return Address{}, err
	}
	return FromNetip(ip.Unmap()), nil
}
