package open5e

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxParamRunes = 100
	minParamValue = 0
	maxParamValue = 1000
)

// sanitizeParams converts request parameters into a query string.
// Strings are trimmed and capped at 100 runes, numbers outside 0..1000 and
// empty or unsupported values are dropped.
func sanitizeParams(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		if key == "" {
			continue
		}
		switch v := value.(type) {
		case string:
			s := strings.TrimSpace(v)
			if utf8.RuneCountInString(s) > maxParamRunes {
				s = string([]rune(s)[:maxParamRunes])
			}
			if s != "" {
				values.Set(key, s)
			}
		case int:
			if v >= minParamValue && v <= maxParamValue {
				values.Set(key, strconv.Itoa(v))
			}
		case float64:
			if !math.IsNaN(v) && !math.IsInf(v, 0) && v >= minParamValue && v <= maxParamValue {
				values.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
			}
		case bool:
			values.Set(key, strconv.FormatBool(v))
		}
	}
	return values
}
