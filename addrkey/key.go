// Package addrkey converts textual IP addresses into fixed-width integer keys and back.
//
// An IPv4 address becomes a 32-bit key, an IPv6 address a 128-bit key; in both cases the
// first character of the address maps onto the most significant bits of the key.
package addrkey

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

type Family byte

const (
	Invalid Family = iota
	V4
	V6
)

// Width returns the key width of the family in bits.
func (f Family) Width() int {
	switch f {
	case V4:
		return 32
	case V6:
		return 128
	}
	return 0
}

func (f Family) String() string {
	switch f {
	case V4:
		return "ipv4"
	case V6:
		return "ipv6"
	}
	return "invalid"
}

// Key is an unsigned integer of up to 128 bits in network bit order.
type Key struct {
	Hi uint64
	Lo uint64
}

// Address is a parsed address: a family tag and the key of the family width.
type Address struct {
	Family Family
	Key    Key
}

// FromNetip converts a netip address. Mapped IPv4 addresses stay in the V6 family.
func FromNetip(ip netip.Addr) Address {
	if ip.Is4() {
		b := ip.As4()
		return Address{V4, Key{Lo: uint64(binary.BigEndian.Uint32(b[:]))}}
	}
	b := ip.As16()
	return Address{V6, Key{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}}
}

// Netip converts the address back into a netip address.
// The zero netip.Addr is returned for the Invalid family.
func (a Address) Netip() netip.Addr {
	switch a.Family {
	case V4:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(a.Key.Lo))
		return netip.AddrFrom4(b)
	case V6:
		var b [16]byte
		binary.BigEndian.PutUint64(b[:8], a.Key.Hi)
		binary.BigEndian.PutUint64(b[8:], a.Key.Lo)
		return netip.AddrFrom16(b)
	}
	return netip.Addr{}
}

// String returns the canonical text of the address.
func (a Address) String() string {
	return Format(a)
}

// Format returns the canonical text of the address: dotted-quad for V4 and
// RFC 5952 colon-hex for V6. Mapped IPv4 stays in hex so that Strict accepts the result.
func Format(a Address) string {
	switch a.Family {
	case Invalid:
		return "invalid"
	case V6:
		if ip := a.Netip(); ip.Is4In6() {
			return fmt.Sprintf("::ffff:%x:%x", uint16(a.Key.Lo>>16), uint16(a.Key.Lo))
		}
	}
	return a.Netip().String()
}
