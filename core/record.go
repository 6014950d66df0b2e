// Package core: Record type, numeric field access, vector projection.
package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for record field access.
var (
	// ErrMissingField is returned when a requested field is absent on a record.
	ErrMissingField = errors.New("core: record field missing")

	// ErrInvalidValue is returned when a field holds a non-numeric or
	// non-finite (NaN/±Inf) value where a finite number is required.
	ErrInvalidValue = errors.New("core: non-numeric or non-finite field value")
)

// Record is one row of a tabular dataset: a mapping from field name to value.
// Analytics packages read a numeric subset of its fields and annotate derived
// fields in place; every other field is left untouched.
type Record map[string]any

// Vector is an ordered sequence of coordinates for one record, in the
// dimension order selected by the caller.
type Vector = []float64

// Numeric returns the value of field as a float64.
// Accepted dynamic types: float64, float32 and the signed/unsigned integer
// kinds. Returns ErrMissingField if the field is absent, ErrInvalidValue if
// the value is non-numeric or not finite.
func (r Record) Numeric(field string) (float64, error) {
	raw, ok := r[field]
	if !ok {
		return 0, fmt.Errorf("Numeric(%q): %w", field, ErrMissingField)
	}

	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int8:
		v = float64(x)
	case int16:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint8:
		v = float64(x)
	case uint16:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	default:
		return 0, fmt.Errorf("Numeric(%q): %T: %w", field, raw, ErrInvalidValue)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Numeric(%q): %w", field, ErrInvalidValue)
	}

	return v, nil
}

// Vector projects the record onto the given ordered field list.
// The result has one coordinate per field, in the order supplied.
// Fails with ErrMissingField/ErrInvalidValue naming the offending field.
func (r Record) Vector(fields []string) (Vector, error) {
	vec := make(Vector, len(fields))
	for i, f := range fields {
		v, err := r.Numeric(f)
		if err != nil {
			return nil, err
		}
		vec[i] = v
	}

	return vec, nil
}

// SortedFields returns the keys of origin in lexicographic order.
// This is the canonical dimension order for every positional structure
// (covariance matrices, per-record vectors): Go maps are unordered, so a
// sorted key set is the only reproducible enumeration.
func SortedFields(origin map[string]float64) []string {
	fields := make([]string, 0, len(origin))
	for k := range origin {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	return fields
}
