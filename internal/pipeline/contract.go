package pipeline

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// The model is an untrusted data source: its output is only persisted after
// it parses and matches the declared shape below.

const (
	maxLeads         = 7
	openersPerLead   = 3
	strategyListSize = 8
	minScore         = 1
	maxScore         = 10
)

// ValidateLeads checks the lead-analysis contract:
// {"leads": [{comment_text, pain_point_identified, potential_score 1-10,
// suggested_openers x3}, ...]} with at most seven entries.
func ValidateLeads(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: not valid JSON", ErrContractViolation)
	}

	leads := gjson.GetBytes(raw, "leads")
	if !leads.Exists() || !leads.IsArray() {
		return fmt.Errorf("%w: missing leads array", ErrContractViolation)
	}

	entries := leads.Array()
	if len(entries) > maxLeads {
		return fmt.Errorf("%w: %d leads exceeds limit of %d", ErrContractViolation, len(entries), maxLeads)
	}

	for i, lead := range entries {
		if lead.Get("comment_text").Type != gjson.String || lead.Get("comment_text").String() == "" {
			return fmt.Errorf("%w: lead %d has no comment_text", ErrContractViolation, i)
		}
		if lead.Get("pain_point_identified").Type != gjson.String {
			return fmt.Errorf("%w: lead %d has no pain_point_identified", ErrContractViolation, i)
		}

		score := lead.Get("potential_score")
		if score.Type != gjson.Number {
			return fmt.Errorf("%w: lead %d has no numeric potential_score", ErrContractViolation, i)
		}
		v := score.Float()
		if v != float64(int64(v)) || v < minScore || v > maxScore {
			return fmt.Errorf("%w: lead %d potential_score %v out of range", ErrContractViolation, i, score.Value())
		}

		openers := lead.Get("suggested_openers")
		if !openers.IsArray() || len(openers.Array()) != openersPerLead {
			return fmt.Errorf("%w: lead %d must have exactly %d suggested_openers", ErrContractViolation, i, openersPerLead)
		}
		for _, opener := range openers.Array() {
			if opener.Type != gjson.String || opener.String() == "" {
				return fmt.Errorf("%w: lead %d has a non-string opener", ErrContractViolation, i)
			}
		}
	}

	return nil
}

// ValidateStrategy checks the strategy contract: exactly eight non-empty
// keywords and eight non-empty hashtags.
func ValidateStrategy(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: not valid JSON", ErrContractViolation)
	}

	for _, key := range []string{"keywords", "hashtags"} {
		list := gjson.GetBytes(raw, key)
		if !list.Exists() || !list.IsArray() {
			return fmt.Errorf("%w: missing %s array", ErrContractViolation, key)
		}
		entries := list.Array()
		if len(entries) != strategyListSize {
			return fmt.Errorf("%w: %s must have exactly %d entries, got %d", ErrContractViolation, key, strategyListSize, len(entries))
		}
		for i, entry := range entries {
			if entry.Type != gjson.String || entry.String() == "" {
				return fmt.Errorf("%w: %s[%d] is not a non-empty string", ErrContractViolation, key, i)
			}
		}
	}

	return nil
}
