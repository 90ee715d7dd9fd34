package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HeadIssue is one recorded problem on a machine head.
type HeadIssue struct {
	Description string `json:"description"`
	Fixed       bool   `json:"fixed"`
}

// HeadStatus is the current multi-issue head shape.
type HeadStatus struct {
	Issues []HeadIssue `json:"issues"`
}

// legacyHeadStatus is the single-issue shape older saved documents carry.
type legacyHeadStatus struct {
	Error string `json:"error"`
	Fixed bool   `json:"fixed"`
	Notes string `json:"notes"`
}

// NormalizeHeadStatus upgrades a raw head-status document to the current
// shape. Documents already carrying an "issues" list pass through; legacy
// single-issue documents are lifted into a one-element list with the notes
// folded into the description. Empty input yields an empty status.
func NormalizeHeadStatus(raw []byte) (HeadStatus, error) {
	if len(raw) == 0 {
		return HeadStatus{}, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return HeadStatus{}, fmt.Errorf("decode head status: %w", err)
	}

	if _, ok := probe["issues"]; ok {
		var current HeadStatus
		if err := json.Unmarshal(raw, &current); err != nil {
			return HeadStatus{}, fmt.Errorf("decode head status: %w", err)
		}
		return current, nil
	}

	var legacy legacyHeadStatus
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return HeadStatus{}, fmt.Errorf("decode legacy head status: %w", err)
	}
	if legacy.Error == "" && legacy.Notes == "" {
		return HeadStatus{}, nil
	}
	desc := legacy.Error
	if legacy.Notes != "" {
		if desc != "" {
			desc += " (" + legacy.Notes + ")"
		} else {
			desc = legacy.Notes
		}
	}
	return HeadStatus{Issues: []HeadIssue{{Description: strings.TrimSpace(desc), Fixed: legacy.Fixed}}}, nil
}
