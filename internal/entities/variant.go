package entities

import (
	"fmt"
	"strings"
)

// Variant selects the bonus talents injected after a draw
type Variant string

// Supported variants
const (
	VariantNone      Variant = ""
	VariantImmortals Variant = "immortals"
	VariantMagic     Variant = "magic"
)

// ParseVariant accepts the variant name or its single-letter alias
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return VariantNone, nil
	case "a", string(VariantImmortals):
		return VariantImmortals, nil
	case "b", string(VariantMagic):
		return VariantMagic, nil
	default:
		return VariantNone, fmt.Errorf("unknown variant %q", s)
	}
}

// String returns the variant name, "none" for the default
func (v Variant) String() string {
	if v == VariantNone {
		return "none"
	}
	return string(v)
}

// SpecialIDs returns the fixed talent ids the variant injects, in order
func (v Variant) SpecialIDs() []int {
	switch v {
	case VariantImmortals:
		return []int{1048}
	case VariantMagic:
		return []int{1131, 1005, 1004}
	default:
		return nil
	}
}
