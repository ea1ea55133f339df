package tutor

import "strings"

// Sanitize normalizes generated text into a short chat reply: markup is
// stripped, the text is capped at two sentences, clipped to the character
// budget, and everything after the first question mark is scrubbed so at
// most one open question is ever presented.
func Sanitize(text string, maxChars int) string {
	t := stripMarkup(text)
	t = capSentences(t, 2)
	t = clip(t, maxChars)
	t = scrubAfterQuestion(t)
	return strings.TrimSpace(t)
}

// stripMarkup flattens markdown into plain chat text.
func stripMarkup(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#> ")
		line = trimListMarker(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	joined := strings.Join(out, " ")
	joined = strings.NewReplacer("**", "", "*", "", "__", "", "_", "", "`", "", "~", "").Replace(joined)
	return strings.Join(strings.Fields(joined), " ")
}

func trimListMarker(line string) string {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return rest
		}
	}
	// Numbered list: digits followed by ". " or ") ".
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && (line[i] == '.' || line[i] == ')') && line[i+1] == ' ' {
		return strings.TrimSpace(line[i+2:])
	}
	return line
}

// capSentences keeps at most n sentences. A run of terminators ("...",
// "?!") counts as one sentence end, and a terminator ends a sentence only
// at end of text or before a space, so "2.5 units" keeps its decimal
// point.
func capSentences(text string, n int) string {
	count := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			i++
			continue
		}

		end := i + 1
		for end < len(text) && (text[end] == '.' || text[end] == '!' || text[end] == '?') {
			end++
		}
		if end >= len(text) || text[end] == ' ' {
			count++
			if count >= n {
				return text[:end]
			}
		}
		i = end
	}
	return text
}

// clip enforces the character budget, cutting back to a word boundary.
func clip(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := string(runes[:maxChars])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:")
}

// scrubAfterQuestion drops everything after the first question mark.
func scrubAfterQuestion(text string) string {
	if idx := strings.IndexRune(text, '?'); idx >= 0 {
		return text[:idx+1]
	}
	return text
}
