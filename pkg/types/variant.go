package types

import (
	"fmt"
	"strings"
)

// Variant identifies one task representation under measurement.
type Variant string

const (
	// VariantV1 checks the prerequisite gate on every call.
	VariantV1 Variant = "V1"

	// VariantV2 folds the gate into the stored callable at configuration time.
	VariantV2 Variant = "V2"

	// VariantV3 stores tasks by value and checks the gate on every call.
	VariantV3 Variant = "V3"
)

// AllVariants lists every known variant in report order.
var AllVariants = []Variant{VariantV1, VariantV2, VariantV3}

// ParseVariant parses a variant name case-insensitively ("v1", "V2", ...).
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllVariants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// String returns the report label of the variant.
func (v Variant) String() string {
	return string(v)
}
