package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// FlexFloat accepts a JSON number or a numeric string. Anything else
// decodes to zero, which `required` then rejects.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat(parseFlex(b))
	return nil
}

// FlexInt is FlexFloat truncated toward zero.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = FlexInt(math.Trunc(parseFlex(b)))
	return nil
}

// Int64 returns the value or fallback when the pointer is nil or zero.
func (i *FlexInt) Int64(fallback int64) int64 {
	if i == nil || *i == 0 {
		return fallback
	}
	return int64(*i)
}

func parseFlex(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0
	}
	s := string(b)
	if b[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return 0
		}
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
