package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

// NormalizeSkill lowercases a skill name and collapses separators to single
// spaces. '+' and '#' survive so "C++" and "C#" stay distinct from "C".
func NormalizeSkill(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '+' || r == '#':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r) || r == '.' || r == '-' || r == '/' || r == '_':
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandSkill lists the normalized name, its synonyms and their compact
// (space-free) forms. The result is capped at ten entries.
func ExpandSkill(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	compact := strings.ReplaceAll(normalized, " ", "")
	add(compact)

	syns := GetSynonyms(normalized)
	if len(syns) == 0 && compact != normalized {
		syns = GetSynonyms(compact)
	}
	for _, syn := range syns {
		add(syn)
		add(strings.ReplaceAll(syn, " ", ""))
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

// SameSkill reports whether two raw skill names share any variant.
func SameSkill(a, b string) bool {
	va := ExpandSkill(NormalizeSkill(a))
	if len(va) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(va))
	for _, v := range va {
		set[v] = struct{}{}
	}
	for _, v := range ExpandSkill(NormalizeSkill(b)) {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
