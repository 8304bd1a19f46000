package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SpanSeparator joins the two ends of a date span.
const SpanSeparator = " – "

// Current marks an end date that is still ongoing.
const Current = "current"

// CleanValue returns the trimmed display form of a cell value.
// Missing cells and non-finite numbers yield "".
func CleanValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// Year is the result of coercing a cell to a numeric year.
type Year struct {
	Value float64
	Valid bool
}

// Whole reports whether the year has no fractional part.
func (y Year) Whole() bool {
	return y.Valid && y.Value == math.Trunc(y.Value)
}

// String renders the year, without a fraction when it is whole.
func (y Year) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.FormatFloat(y.Value, 'f', -1, 64)
}

// CoerceYear converts a cell value to a Year.
// Blank, non-numeric and non-finite values give an invalid Year.
func CoerceYear(v interface{}) Year {
	f, ok := toFloat(v)
	if !ok {
		return Year{}
	}
	return Year{Value: f, Valid: true}
}

// toFloat parses a numeric cell or numeric text into a finite float.
func toFloat(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case int64:
		f = float64(x)
	case int:
		f = float64(x)
	case float64:
		f = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatSpan renders a start/end pair as a date range such as "2018 – 2020".
// Transposed numeric years are swapped back into order.
func FormatSpan(start, end interface{}) string {
	s, e := CleanValue(start), CleanValue(end)
	sYear, eYear := CoerceYear(start), CoerceYear(end)

	if sYear.Valid && eYear.Valid && sYear.Value > eYear.Value {
		s, e = e, s
	}

	switch {
	case s == "" && e == "":
		return ""
	case strings.ToLower(e) == Current:
		if s != "" {
			return s + SpanSeparator + Current
		}
		return Current
	case s != "" && e != "":
		return s + SpanSeparator + e
	case s != "":
		return s
	default:
		return e
	}
}
