package parse

import "strconv"

// Int, Float, and Double follow the original tml_node_to_int/_to_float/
// _to_double's atoi/atof-style leniency (spec.md §6 / SPEC_FULL §4): a
// value that starts with a recognizable number is parsed from its
// leading numeric prefix, trailing garbage is ignored, and anything with
// no usable numeric prefix becomes 0, so e.g. "12px" yields 12.

// Int parses c's value leniently as a base-10 integer.
func (c Cursor) Int() int {
	prefix := leadingNumber(c.Value(), false)
	if prefix == "" {
		return 0
	}
	n, _ := strconv.ParseInt(prefix, 10, 64)
	return int(n)
}

// Float parses c's value leniently as a floating point number.
func (c Cursor) Float() float32 {
	return float32(c.Double())
}

// Double parses c's value leniently as a floating point number.
func (c Cursor) Double() float64 {
	prefix := leadingNumber(c.Value(), true)
	if prefix == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

// leadingNumber returns the longest prefix of v that parses as a number:
// an optional sign, digits, and (if allowFraction) an optional '.' and
// more digits. It does not validate exponents; tml-convert's own corpus
// never emits them and the original doesn't parse them either.
func leadingNumber(v []byte, allowFraction bool) string {
	i := 0
	if i < len(v) && (v[i] == '+' || v[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	hasDigits := i > digitsStart

	if allowFraction && i < len(v) && v[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(v) && v[j] >= '0' && v[j] <= '9' {
			j++
		}
		if j > fracStart {
			i = j
			hasDigits = true
		}
	}

	if !hasDigits {
		return ""
	}
	return string(v[:i])
}

// Ints, Floats, and Doubles walk c's children in order, converting each
// with the same lenient rule, stopping after max conversions (or all
// children, if max <= 0). Restored from the original's
// tml_node_to_int_array/_float_array/_double_array, dropped from the
// distilled spec's signature list but still useful for numeric attribute
// lists in xmltml.

func (c Cursor) Ints(max int) []int {
	var out []int
	for child := c.FirstChild(); !child.IsNull() && (max <= 0 || len(out) < max); child = child.NextSibling() {
		out = append(out, child.Int())
	}
	return out
}

func (c Cursor) Floats(max int) []float32 {
	var out []float32
	for child := c.FirstChild(); !child.IsNull() && (max <= 0 || len(out) < max); child = child.NextSibling() {
		out = append(out, child.Float())
	}
	return out
}

func (c Cursor) Doubles(max int) []float64 {
	var out []float64
	for child := c.FirstChild(); !child.IsNull() && (max <= 0 || len(out) < max); child = child.NextSibling() {
		out = append(out, child.Double())
	}
	return out
}
