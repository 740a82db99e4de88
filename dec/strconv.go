package dec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/floating/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as floats, like `1234.5678`.
	JSONModeFloat
	// JSONModeME marshals values with mantissa and exponent, like `{"m":123,"e":-5}`.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)

	jsonParts = []string{`{"m":`, `,"e":`, `}`}
	jsonLen   = len(jsonParts[0]) + len(jsonParts[1]) + len(jsonParts[2])

	digitsInMaxMantissa = mathutil.DecimalDigits(MaxMantissa)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // not a positioned error, leave as is.
		return err
	}
	pe.pos += offset
	return pe
}

// FromString parses a string into a value.
// Plain decimal ("12.345") and scientific ("12345e-3") notations are
// accepted, as are the special literals "Inf", "-Inf" and "NaN".
func FromString(s string) (Value, error) {
	cleaned, offset, neg := prepareString(s)
	if len(cleaned) == 0 {
		return Zero(), fmt.Errorf("empty input")
	}
	switch cleaned {
	case "Inf":
		if neg {
			return NegInf(), nil
		}
		return Inf(), nil
	case "NaN":
		return NaN(), nil
	}
	digits, e, err := doParse(cleaned)
	if err != nil {
		// add what we've trimmed before and +1 to start indices from 1.
		return Zero(), fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return fromDigitsAndExp(digits, e, neg), nil
}

// MustFromString is like FromString, but panics on a malformed input.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// fromDigitsAndExp builds a value from a digit string without leading and
// trailing zeros. Digits beyond the mantissa's capacity are truncated.
func fromDigitsAndExp(digits string, e int64, neg bool) Value {
	if len(digits) == 0 {
		return Zero()
	}
	if toCut := len(digits) - digitsInMaxMantissa; toCut > 0 {
		e += int64(toCut)
		digits = digits[:digitsInMaxMantissa]
	}
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		panic(err) // should not normally happen
	}
	m := int64(u)
	if neg {
		m = -m
	}
	return fromWide(m, e)
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// doParse parses the given decimal string.
// returns a string without leading and trailing zeros, and an exponent.
func doParse(s string) (result string, e int64, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZerosString(result, delimPos)
	return result, e + eFromDelim, nil
}

func removeLeadingZeros(s string) (result string, delimPos int, e int64, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e':
			parsed, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = parsed
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, e, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int64) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, int64(delimPos - len(s))
}

// specialString spells the reserved values; ok is false for normal ones.
func (v Value) specialString() (s string, ok bool) {
	switch {
	case v.f.IsNaN():
		return "NaN", true
	case v.f.IsInf(1):
		return "Inf", true
	case v.f.IsInf(-1):
		return "-Inf", true
	}
	return "", false
}

// String returns a decimal string representation of the value.
func (v Value) String() string {
	if s, ok := v.specialString(); ok {
		return s
	}
	var builder strings.Builder
	m, e := v.compact()
	formatMantExp(v.Sign(), uint64(mathutil.Abs(m)), e, 'f', &builder)
	return builder.String()
}

// GoString returns a debug representation with the raw canonical fields.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.f.Mantissa(), v.f.Exponent())
}

// Format implements fmt.Formatter.
// 'f' and 's' produce the plain decimal form, 'e' and 'v' the
// mantissa-exponent form.
func (v Value) Format(fs fmt.State, c rune) {
	if s, ok := v.specialString(); ok {
		io.WriteString(fs, s)
		return
	}
	m, e := v.compact()
	formatMantExp(v.Sign(), uint64(mathutil.Abs(m)), e, c, fs)
}

func formatMantExp(sign int, mant uint64, exp int64, format rune, w io.Writer) {
	switch format {
	case 'f', 's':
		formatAsDecimal(mant, sign, exp, w)
	case 'e', 'v':
		fallthrough
	default:
		formatWithExponent(mant, sign, exp, w)
	}
}

func formatAsDecimal(mant uint64, sign int, exp int64, w io.Writer) {
	if mant == 0 {
		w.Write([]byte{'0'})
		return
	}
	if sign < 0 {
		w.Write([]byte{'-'})
	}
	mString := strconv.FormatUint(mant, 10)
	switch {
	case exp >= 0:
		w.Write([]byte(mString))
		if exp > 0 {
			w.Write(zeroBytes(int(exp)))
		}
	default:
		if diff := len(mString) + int(exp); diff <= 0 { // add leading zeros and a delimiter
			w.Write([]byte{'0', delim})
			w.Write(zeroBytes(-diff))
			w.Write([]byte(mString))
		} else { // insert a delimeter
			w.Write([]byte(mString[:diff]))
			w.Write([]byte{delim})
			w.Write([]byte(mString[diff:]))
		}
	}
}

func formatWithExponent(mant uint64, sign int, exp int64, w io.Writer) {
	if sign < 0 {
		w.Write([]byte{'-'})
	}
	mString := strconv.FormatUint(mant, 10)
	w.Write([]byte(mString))
	if mant != 0 {
		w.Write([]byte("e" + strconv.FormatInt(exp, 10)))
	}
}

// MarshalJSON marshals the value according to the current JSONMode.
// The special values are always marshaled as strings, since json has no
// notation for them.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Value) toJSON(mode int) []byte {
	if s, ok := v.specialString(); ok {
		return []byte(`"` + s + `"`)
	}
	switch mode {
	case JSONModeFloat:
		return []byte(strconv.FormatFloat(v.Float64(), 'f', -1, 64))
	case JSONModeME:
		var builder strings.Builder
		m, e := v.compact()
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatInt(m, 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatInt(e, 10))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		if v.calcStrLen() <= v.calcMeLen() {
			return v.toJSON(JSONModeString)
		}
		return v.toJSON(JSONModeME)
	default: // marshal as a string
		var builder strings.Builder
		builder.WriteRune('"')
		m, e := v.compact()
		formatAsDecimal(uint64(mathutil.Abs(m)), v.Sign(), e, &builder)
		builder.WriteRune('"')
		return []byte(builder.String())
	}
}

// UnmarshalJSON unmarshals a string, a float, or an {"m":..,"e":..}
// object into a value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			M int64
			E int32
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*v = FromMantAndExp(d.M, d.E)
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}

func (v Value) calcMeLen() int {
	m, e := v.compact()
	return jsonLen + mathutil.DecimalLenInt64(m) + mathutil.DecimalLenInt64(e)
}

func (v Value) calcStrLen() int {
	m, e := v.compact()
	digits := mathutil.DecimalDigits(uint64(mathutil.Abs(m)))
	// 2 for a pair of quotes plus the mantissa
	sLen := 2 + digits
	if m < 0 {
		sLen++
	}
	if e > 0 { // `e` trailing zeros
		sLen += int(e)
	} else if e < 0 {
		sLen++                                // a delimeter
		if diff := int(e) + digits; diff < 0 { // leading zeros
			sLen += -diff
		}
	}
	return sLen
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}
