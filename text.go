package ortograf

import "regexp"

// reWord matches a single word token: letters, optionally joined by an
// apostrophe (l'home) or an abbreviation dot (n.º).
var reWord = regexp.MustCompile(`[\p{L}]+(?:['’.][\p{L}]+)*`)

// TokenResult is the verdict for one word token of a text.
type TokenResult struct {
	Token       string       `json:"token"`
	Offset      int          `json:"offset"`
	Correct     bool         `json:"correct"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// CheckText tokenizes text and checks each word token, returning one
// result per token in order of appearance. Suggestions are only
// computed for misspelled tokens.
func (c *Checker) CheckText(text string) []TokenResult {
	var results []TokenResult
	positions := reWord.FindAllStringIndex(text, -1)

	for _, pos := range positions {
		token := text[pos[0]:pos[1]]
		res := TokenResult{
			Token:   token,
			Offset:  pos[0],
			Correct: c.IsCorrect(token),
		}
		if !res.Correct {
			res.Suggestions = c.Suggestions(token)
		}
		results = append(results, res)
	}
	return results
}

// Misspellings returns only the incorrect tokens of text.
func (c *Checker) Misspellings(text string) []TokenResult {
	var bad []TokenResult
	for _, res := range c.CheckText(text) {
		if !res.Correct {
			bad = append(bad, res)
		}
	}
	return bad
}
