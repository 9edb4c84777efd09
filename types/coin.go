package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LunasPerNIM is the number of Luna, the smallest unit, in one NIM.
const LunasPerNIM = 100000

const nimDecimals = 5

// Luna is an amount of NIM expressed in its smallest unit.
type Luna uint64

// NIM converts a whole number of NIM to Luna.
func NIM(n uint64) Luna {
	return Luna(n * LunasPerNIM)
}

// FormatNIM renders the amount in NIM with all five decimals, e.g. "1.50000".
func (l Luna) FormatNIM() string {
	return fmt.Sprintf("%d.%05d", uint64(l)/LunasPerNIM, uint64(l)%LunasPerNIM)
}

func (l Luna) String() string {
	return l.FormatNIM() + " NIM"
}

// ParseNIM parses a decimal NIM amount such as "12", "0.5" or "1.00001".
func ParseNIM(s string) (Luna, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "NIM"))
	if s == "" {
		return 0, errors.New("empty amount")
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > nimDecimals {
		return 0, fmt.Errorf("amount %q has more than %d decimals", s, nimDecimals)
	}
	if whole == "" {
		whole = "0"
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac+strings.Repeat("0", nimDecimals-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	if w > (math.MaxUint64-f)/LunasPerNIM {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	return Luna(w*LunasPerNIM + f), nil
}
