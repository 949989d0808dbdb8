package service

import (
	"regexp"
	"strings"
)

// ── query parser ────────────────────────────────────────────
//
// Turns the raw search text into either an exact section locator
// ("MAT024-203", "mat024 203") or a fuzzy multi-token filter, and reduces
// room labels to canonical base tokens so display variants of the same
// physical room group together.
// ─────────────────────────────────────────────────────────────

var (
	// <single token><space or dash run><digits><end>. The lazy first group
	// lets codes with interior dashes ("MAT-024-203") split at the last
	// separator before the section digits.
	exactLocatorRe = regexp.MustCompile(`^(\S+?)[\s\-]+(\d+)\s*$`)

	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	roomSuffixRe  = regexp.MustCompile(`(?i)\s*-?\s*(SJ|Campus|Laboratorio)\s*$`)
	roomTokenLab  = regexp.MustCompile(`(?i)(\w+)\s+LAB`)
	roomLabMarker = regexp.MustCompile(`(?i)(LAB\s*-?\s*\w+)`)
	leadingAlnum  = regexp.MustCompile(`^[A-Za-z0-9]+`)
)

// SectionLocator addresses one specific section: a normalized subject code
// plus the leading digits of the section label.
type SectionLocator struct {
	SubjectCode   string
	SectionPrefix string
}

// ParsedQuery is the classification result. Exactly one branch is set.
type ParsedQuery struct {
	Exact   *SectionLocator
	Tokens  []string
	Pattern string // wildcard-joined token pattern for SQL LIKE matching
}

// ClassifyQuery decides between an exact section lookup and a fuzzy text
// filter.
func ClassifyQuery(raw string) ParsedQuery {
	if m := exactLocatorRe.FindStringSubmatch(raw); m != nil {
		return ParsedQuery{Exact: &SectionLocator{
			SubjectCode:   NormalizeExact(m[1]),
			SectionPrefix: NormalizeExact(m[2]),
		}}
	}
	tokens, pattern := NormalizeFuzzy(raw)
	return ParsedQuery{Tokens: tokens, Pattern: pattern}
}

// NormalizeExact lower-cases and strips every character outside [a-z0-9].
// Idempotent, so stored codes and user input normalize identically.
func NormalizeExact(s string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
}

// NormalizeFuzzy lower-cases, splits on whitespace runs and joins the tokens
// with wildcards: "intro to db" → %intro%to%db%, matching all tokens in
// order with anything in between.
func NormalizeFuzzy(s string) ([]string, string) {
	lowered := strings.ToLower(strings.TrimSpace(s))
	if lowered == "" {
		return nil, "%%"
	}
	tokens := whitespaceRe.Split(lowered, -1)
	return tokens, "%" + strings.Join(tokens, "%") + "%"
}

// CanonicalRoom reduces a room label to its base grouping token:
//
//  1. strip a trailing administrative suffix ("-SJ", "-Campus", …)
//  2. "<token> LAB…" → the leading token ("B008 LAB-MEC" → "B008")
//  3. a name starting at a LAB marker → the "LAB-<id>" fragment
//  4. otherwise the leading alphanumeric run
//
// Best-effort heuristic: the original label stays untouched for display.
func CanonicalRoom(label string) string {
	name := roomSuffixRe.ReplaceAllString(strings.TrimSpace(label), "")

	if m := roomTokenLab.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := roomLabMarker.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	return leadingAlnum.FindString(name)
}
