package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RawCatalog is the authoring shape of the talent catalog, keyed by talent id
type RawCatalog map[string]RawTalent

// RawTalent is a single talent as authored. Numeric fields accept JSON
// numbers or numeric strings.
type RawTalent struct {
	Grade       FlexInt         `json:"grade"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Condition   string          `json:"condition,omitempty"`
	Effect      json.RawMessage `json:"effect,omitempty"`
	Status      FlexInt         `json:"status,omitempty"`
	Exclusive   []FlexInt       `json:"exclusive,omitempty"`
	Replacement *RawReplacement `json:"replacement,omitempty"`
}

// RawReplacement holds unparsed "id*weight" entries
type RawReplacement struct {
	Grade  FlexStrings `json:"grade,omitempty"`
	Talent FlexStrings `json:"talent,omitempty"`
}

// FlexInt decodes from a JSON number or a numeric string
type FlexInt struct {
	Value int
	Valid bool
}

// NewFlexInt returns a valid FlexInt
func NewFlexInt(v int) FlexInt {
	return FlexInt{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}

	text = strings.TrimSpace(text)
	if n, err := strconv.Atoi(text); err == nil {
		*f = NewFlexInt(n)
		return nil
	}
	if x, err := strconv.ParseFloat(text, 64); err == nil {
		*f = NewFlexInt(int(x))
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// FlexStrings decodes a JSON array whose elements may be strings or numbers
type FlexStrings []string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(FlexStrings, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, strings.TrimSpace(string(item)))
	}
	*f = out
	return nil
}

// CandidateFallback records an "id*weight" entry that needed a default value
type CandidateFallback struct {
	Section string
	Entry   string
	Reason  string
}

// ParseCandidate splits an "id*weight" entry. A missing or non-numeric id
// becomes 0 and a missing, non-numeric or non-positive weight becomes 1.
// reason is empty when no default was applied.
func ParseCandidate(entry string) (key, weight int, reason string) {
	idPart, weightPart, hasWeight := strings.Cut(strings.TrimSpace(entry), "*")

	var reasons []string
	key, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		key = 0
		if strings.TrimSpace(idPart) == "" {
			reasons = append(reasons, "missing id")
		} else {
			reasons = append(reasons, "non-numeric id")
		}
	}

	weight = 1
	if hasWeight {
		w, err := strconv.Atoi(strings.TrimSpace(weightPart))
		switch {
		case err != nil:
			reasons = append(reasons, "non-numeric weight")
		case w <= 0:
			reasons = append(reasons, "non-positive weight")
		default:
			weight = w
		}
	}

	return key, weight, strings.Join(reasons, ", ")
}

// ParseCandidates builds a Candidates map from raw entries. Later entries
// with the same key overwrite earlier ones.
func ParseCandidates(section string, entries []string) (Candidates, []CandidateFallback) {
	if entries == nil {
		return nil, nil
	}

	out := make(Candidates, len(entries))
	var fallbacks []CandidateFallback
	for _, entry := range entries {
		key, weight, reason := ParseCandidate(entry)
		if reason != "" {
			fallbacks = append(fallbacks, CandidateFallback{Section: section, Entry: entry, Reason: reason})
		}
		out[key] = weight
	}
	return out, fallbacks
}

// NormalizeText returns s in Unicode normalization form C
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}

// ParseTalentID converts a catalog key into a talent id
func ParseTalentID(key string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("talent id %q is not numeric", key)
	}
	return id, nil
}

// Definition normalizes the raw talent into a registry definition. MaxTriggers
// is left for the caller to compute.
func (r RawTalent) Definition(id int) (*Definition, []CandidateFallback) {
	def := &Definition{
		ID:          id,
		Grade:       NormalizeGrade(r.Grade.Value),
		Name:        NormalizeText(r.Name),
		Description: NormalizeText(r.Description),
		Condition:   r.Condition,
		Status:      r.Status.Value,
	}
	if len(r.Effect) > 0 && !bytes.Equal(bytes.TrimSpace(r.Effect), []byte("null")) {
		def.Effect = append(json.RawMessage(nil), r.Effect...)
	}

	for _, e := range r.Exclusive {
		if e.Valid {
			def.Exclusive = append(def.Exclusive, e.Value)
		}
	}

	if r.Replacement == nil {
		return def, nil
	}

	var fallbacks []CandidateFallback
	grade, fb := ParseCandidates("grade", r.Replacement.Grade)
	fallbacks = append(fallbacks, fb...)
	talent, fb := ParseCandidates("talent", r.Replacement.Talent)
	fallbacks = append(fallbacks, fb...)

	def.Replacement = &Replacement{Grade: grade, Talent: talent}
	if def.Replacement.Empty() {
		def.Replacement = nil
	}
	return def, fallbacks
}
