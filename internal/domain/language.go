package domain

// LanguageSource names where a requested language list came from.
type LanguageSource string

// Language sources, in the order they are consulted.
const (
	LanguageSourceQuery   LanguageSource = "query"
	LanguageSourceHeader  LanguageSource = "header"
	LanguageSourceDefault LanguageSource = "default"
)
