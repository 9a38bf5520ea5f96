package assistant

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a model supplied money value. It accepts JSON numbers and
// strings such as "50", "50,90", "R$ 1.234,56". Anything else leaves it
// invalid instead of failing the whole reply.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = normalizeAmount(str)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	a.Value, a.Valid = d, true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}

var dotThousands = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// normalizeAmount turns formatted money ("R$ 1.234,56", "1,234.56",
// "1.500") into a plain decimal. With both separators present the last
// one is the decimal mark; a lone comma is a decimal comma.
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")

	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	case dotThousands.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}

// RefID is an optional entity id the model may send as a number or a
// numeric string.
type RefID struct {
	Value uint
	Set   bool
}

func (r *RefID) UnmarshalJSON(b []byte) error {
	*r = RefID{}
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	r.Value, r.Set = uint(n), true
	return nil
}

func (r RefID) MarshalJSON() ([]byte, error) {
	if !r.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(r.Value), 10)), nil
}
