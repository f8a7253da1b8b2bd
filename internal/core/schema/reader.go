package schema

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Issue messages produced while reading a payload.
const (
	MsgExpectedObject  = "Expected object"
	MsgRequired        = "Required"
	MsgNotNullable     = "Cannot be null"
	MsgExpectedString  = "Expected string"
	MsgExpectedNumber  = "Expected number"
	MsgExpectedInteger = "Expected integer"
	MsgInvalidDate     = "Invalid date"
	MsgNoFields        = "No fields provided for update"
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Reader extracts typed fields from a decoded JSON object. It handles presence,
// explicit null and coercion; constraints are left to the validator. Every
// problem is recorded as an issue and reading continues, so a single pass
// collects all of them.
type Reader struct {
	fields   map[string]any
	issues   []apperrors.Issue
	reported map[string]bool
	present  int
}

// NewReader wraps raw, which must be a JSON object.
func NewReader(raw any) (*Reader, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, apperrors.NewValidationError(apperrors.Issue{Path: "", Message: MsgExpectedObject})
	}
	return &Reader{fields: fields, reported: make(map[string]bool)}, nil
}

// Present returns how many recognized keys were found in the payload, nulls included.
func (r *Reader) Present() int {
	return r.present
}

// Issues returns the issues collected so far.
func (r *Reader) Issues() []apperrors.Issue {
	return r.issues
}

// Err returns a validation error carrying every collected issue, or nil.
func (r *Reader) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return apperrors.NewValidationError(r.issues...)
}

// AddIssue records an issue. Only the first issue per path is kept.
func (r *Reader) AddIssue(path, message string) {
	if r.reported[path] {
		return
	}
	r.reported[path] = true
	r.issues = append(r.issues, apperrors.Issue{Path: path, Message: message})
}

// lookup reports the raw value under key and whether the key exists at all.
func (r *Reader) lookup(key string) (any, bool) {
	v, ok := r.fields[key]
	if ok {
		r.present++
	}
	return v, ok
}

// RequiredString reads a mandatory string. The result is trimmed.
func (r *Reader) RequiredString(key string) string {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		r.AddIssue(key, MsgRequired)
		return ""
	}
	s, _ := r.toString(key, v)
	return s
}

// DefaultString reads an optional, non-nullable string, falling back to def when absent.
func (r *Reader) DefaultString(key, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	if v == nil {
		r.AddIssue(key, MsgNotNullable)
		return ""
	}
	s, _ := r.toString(key, v)
	return s
}

// OptionalString reads a string that may be omitted on create. Null is treated as absent.
func (r *Reader) OptionalString(key string) *string {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return nil
	}
	s, valid := r.toString(key, v)
	if !valid {
		return nil
	}
	return &s
}

// RequiredDecimal reads a mandatory number.
func (r *Reader) RequiredDecimal(key string) decimal.Decimal {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		r.AddIssue(key, MsgRequired)
		return decimal.Zero
	}
	d, _ := r.toDecimal(key, v)
	return d
}

// RequiredTime reads a mandatory timestamp.
func (r *Reader) RequiredTime(key string) time.Time {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		r.AddIssue(key, MsgRequired)
		return time.Time{}
	}
	t, _ := r.toTime(key, v)
	return t
}

// OptionalInt64 reads an integer that may be omitted on create. Null is treated as absent.
func (r *Reader) OptionalInt64(key string) *int64 {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return nil
	}
	n, valid := r.toInt64(key, v)
	if !valid {
		return nil
	}
	return &n
}

// StringPtr reads an optional, non-nullable string for a partial update.
func (r *Reader) StringPtr(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	if v == nil {
		r.AddIssue(key, MsgNotNullable)
		return nil
	}
	s, valid := r.toString(key, v)
	if !valid {
		return nil
	}
	return &s
}

// DecimalPtr reads an optional, non-nullable number for a partial update.
func (r *Reader) DecimalPtr(key string) *decimal.Decimal {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	if v == nil {
		r.AddIssue(key, MsgNotNullable)
		return nil
	}
	d, valid := r.toDecimal(key, v)
	if !valid {
		return nil
	}
	return &d
}

// TimePtr reads an optional, non-nullable timestamp for a partial update.
func (r *Reader) TimePtr(key string) *time.Time {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	if v == nil {
		r.AddIssue(key, MsgNotNullable)
		return nil
	}
	t, valid := r.toTime(key, v)
	if !valid {
		return nil
	}
	return &t
}

// NullableString reads a nullable string for a partial update.
func (r *Reader) NullableString(key string) domain.Nullable[string] {
	v, ok := r.lookup(key)
	if !ok {
		return domain.Nullable[string]{}
	}
	if v == nil {
		return domain.NullOf[string]()
	}
	s, valid := r.toString(key, v)
	if !valid {
		return domain.Nullable[string]{}
	}
	return domain.ValueOf(s)
}

// NullableInt64 reads a nullable integer for a partial update.
func (r *Reader) NullableInt64(key string) domain.Nullable[int64] {
	v, ok := r.lookup(key)
	if !ok {
		return domain.Nullable[int64]{}
	}
	if v == nil {
		return domain.NullOf[int64]()
	}
	n, valid := r.toInt64(key, v)
	if !valid {
		return domain.Nullable[int64]{}
	}
	return domain.ValueOf(n)
}

func (r *Reader) toString(key string, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		r.AddIssue(key, MsgExpectedString)
		return "", false
	}
	return strings.TrimSpace(s), true
}

func (r *Reader) toDecimal(key string, v any) (decimal.Decimal, bool) {
	var (
		d   decimal.Decimal
		err error
	)
	switch n := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(n.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			r.AddIssue(key, MsgExpectedNumber)
			return decimal.Zero, false
		}
		d = decimal.NewFromFloat(n)
	case bool, map[string]any, []any:
		r.AddIssue(key, MsgExpectedNumber)
		return decimal.Zero, false
	default:
		var s string
		s, err = cast.ToStringE(n)
		if err == nil {
			d, err = decimal.NewFromString(s)
		}
	}
	if err != nil {
		r.AddIssue(key, MsgExpectedNumber)
		return decimal.Zero, false
	}
	return d, true
}

func (r *Reader) toInt64(key string, v any) (int64, bool) {
	d, ok := r.toDecimal(key, v)
	if !ok {
		return 0, false
	}
	if !d.IsInteger() || d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		r.AddIssue(key, MsgExpectedInteger)
		return 0, false
	}
	return d.IntPart(), true
}

// toTime accepts date strings understood by cast (RFC 3339, YYYY-MM-DD and
// friends) and numbers as milliseconds since the Unix epoch. Results are UTC.
func (r *Reader) toTime(key string, v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		parsed, err := cast.ToTimeE(strings.TrimSpace(t))
		if err != nil {
			r.AddIssue(key, MsgInvalidDate)
			return time.Time{}, false
		}
		return parsed.UTC(), true
	case json.Number, float64, int, int64:
		ms, err := cast.ToStringE(t)
		if err != nil {
			r.AddIssue(key, MsgInvalidDate)
			return time.Time{}, false
		}
		d, err := decimal.NewFromString(ms)
		if err != nil || d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
			r.AddIssue(key, MsgInvalidDate)
			return time.Time{}, false
		}
		return time.UnixMilli(d.IntPart()).UTC(), true
	default:
		r.AddIssue(key, MsgInvalidDate)
		return time.Time{}, false
	}
}
