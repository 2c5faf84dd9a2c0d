package app

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxSubtags is the deepest locale tag the fallback chain understands:
// language-region-variant.
const maxSubtags = 3

// ExpandLanguages turns requested locale tags into a fallback search order.
// Each tag is followed by its shorter prefixes ("de-DE-bavarian", "de-DE",
// "de"), then duplicates are dropped keeping the first occurrence.
func ExpandLanguages(languages []string) []string {
	expanded := make([]string, 0, len(languages)*2)
	seen := make(map[string]struct{}, len(languages)*2)

	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		expanded = append(expanded, tag)
	}

	for _, tag := range languages {
		add(tag)

		parts := strings.Split(tag, "-")
		if len(parts) > maxSubtags {
			continue
		}

		// An empty subtag ends the chain: "en-" yields only itself.
		for n := len(parts) - 1; n >= 1 && parts[n] != ""; n-- {
			add(strings.Join(parts[:n], "-"))
		}
	}

	return expanded
}

// ToLower lowercases every entry. The input slice is left untouched.
func ToLower(values []string) []string {
	caser := cases.Lower(language.Und)

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = caser.String(v)
	}

	return out
}

// ParseAcceptLanguage returns the tags of an Accept-Language header ordered
// by quality. An empty or unparseable header yields an empty list.
func ParseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return []string{}
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}

	return out
}

// FirstSupported expands requested and returns the first entry that matches
// one of supported, ignoring case. The match is returned with the casing used
// in supported.
func FirstSupported(requested, supported []string) (string, bool) {
	lowered := ToLower(supported)

	index := make(map[string]string, len(supported))
	for i, tag := range lowered {
		if _, ok := index[tag]; !ok {
			index[tag] = supported[i]
		}
	}

	for _, candidate := range ToLower(ExpandLanguages(requested)) {
		if match, ok := index[candidate]; ok {
			return match, true
		}
	}

	return "", false
}
