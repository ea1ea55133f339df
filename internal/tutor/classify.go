package tutor

import "strings"

// affirmatives is the fixed set of replies accepted as "understood" without
// model evaluation. Matching is case and whitespace insensitive; trailing
// punctuation is ignored.
var affirmatives = map[string]struct{}{
	"yes":        {},
	"y":          {},
	"да":         {},
	"ok":         {},
	"okay":       {},
	"got it":     {},
	"understood": {},
	"ready":      {},
}

// IsAffirmative reports whether the learner's reply is a plain
// acknowledgement that short-circuits answer evaluation.
func IsAffirmative(text string) bool {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimRight(s, ".!")
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, ok := affirmatives[s]
	return ok
}
