package ortograf

import "strings"

// stripVerbPrefix splits a known derivational prefix off word, trying
// the prefixes in order (callers pass them longest first). The base
// must keep at least 2 bytes: "deshago" → ("des", "hago"), "des" → no.
func stripVerbPrefix(word string, prefixes []string) (prefix, base string, ok bool) {
	for _, p := range prefixes {
		if rest, found := strings.CutPrefix(word, p); found && len(rest) >= 2 {
			return p, rest, true
		}
	}
	return "", "", false
}
