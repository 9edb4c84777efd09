package types

import (
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// AddressSize is the length of a Nimiq address in bytes.
	AddressSize = 20

	// CountryCode prefixes every user-friendly address.
	CountryCode = "NQ"

	friendlyLen = 4 + 32
)

// Nimiq's base32 alphabet leaves out I, O, W and Z.
var addressEncoding = base32.NewEncoding("0123456789ABCDEFGHJKLMNPQRSTUVXY").WithPadding(base32.NoPadding)

var (
	ErrAddressLength   = errors.New("invalid address length")
	ErrAddressChecksum = errors.New("invalid address checksum")
)

// Address is a Nimiq account address.
type Address [AddressSize]byte

// BurnAddress is the all-zero address, NQ07 0000 0000 0000 0000 0000 0000 0000 0000.
var BurnAddress Address

// ParseAddress accepts either the user-friendly IBAN-style form
// ("NQ07 0000 ...", spaces optional, any case) or 40 hex characters with an
// optional 0x prefix.
func ParseAddress(s string) (Address, error) {
	var a Address

	compact := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch {
	case strings.HasPrefix(compact, CountryCode):
		if len(compact) != friendlyLen {
			return a, fmt.Errorf("%w: %q", ErrAddressLength, s)
		}
		if ibanCheck(compact[4:]+compact[:4]) != 1 {
			return a, fmt.Errorf("%w: %q", ErrAddressChecksum, s)
		}
		raw, err := addressEncoding.DecodeString(compact[4:])
		if err != nil {
			return a, fmt.Errorf("invalid address encoding %q: %w", s, err)
		}
		copy(a[:], raw)
		return a, nil

	default:
		compact = strings.TrimPrefix(compact, "0X")
		if len(compact) != 2*AddressSize {
			return a, fmt.Errorf("%w: %q", ErrAddressLength, s)
		}
		raw, err := hex.DecodeString(compact)
		if err != nil {
			return a, fmt.Errorf("invalid hex address %q: %w", s, err)
		}
		copy(a[:], raw)
		return a, nil
	}
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// UserFriendly renders the address as NQxx followed by eight groups of four
// base32 characters, separated by spaces when withSpaces is set.
func (a Address) UserFriendly(withSpaces bool) string {
	b32 := addressEncoding.EncodeToString(a[:])
	check := 98 - ibanCheck(b32+CountryCode+"00")
	res := fmt.Sprintf("%s%02d%s", CountryCode, check, b32)
	if !withSpaces {
		return res
	}

	var sb strings.Builder
	for i := 0; i < len(res); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(res[i : i+4])
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.UserFriendly(true)
}

// Hex returns the lowercase hex form used by the node's "id" fields.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ibanCheck computes the ISO 7064 mod 97-10 remainder of s, with letters
// expanded to two digits (A=10 ... Z=35).
func ibanCheck(s string) int {
	rem := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			// characters outside the alphabet never validate
			return -1
		}
	}
	return rem
}
