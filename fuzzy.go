package ortograf

import "strings"

// Match is one result of a bounded fuzzy search.
type Match struct {
	Word     string
	Info     WordInfo
	Distance int
}

// SearchWithinDistance returns every stored word whose edit distance to
// word is at most maxDistance, paired with its metadata and exact
// distance. The result set is unordered; ranking is the caller's job.
//
// The search is a single depth-first walk of the tree carrying one row
// of the edit-distance table per depth. A subtree is pruned as soon as
// its row minimum exceeds maxDistance, since the distance can only grow
// along further extensions. For small maxDistance this makes the cost
// independent of dictionary size.
func (t *Trie) SearchWithinDistance(word string, maxDistance int) []Match {
	if maxDistance < 0 {
		return nil
	}
	target := []rune(strings.ToLower(word))

	row := make([]int, len(target)+1)
	for i := range row {
		row[i] = i
	}

	var out []Match
	for r, child := range t.root.children {
		searchNode(child, r, string(r), target, row, maxDistance, &out)
	}
	return out
}

func searchNode(node *trieNode, r rune, prefix string, target []rune, prevRow []int, maxDistance int, out *[]Match) {
	row := make([]int, len(target)+1)
	row[0] = prevRow[0] + 1
	minInRow := row[0]
	for j := 1; j <= len(target); j++ {
		cost := 1
		if target[j-1] == r {
			cost = 0
		}
		insert := row[j-1] + 1
		delete := prevRow[j] + 1
		replace := prevRow[j-1] + cost
		d := insert
		if delete < d {
			d = delete
		}
		if replace < d {
			d = replace
		}
		row[j] = d
		if d < minInRow {
			minInRow = d
		}
	}

	if node.isWord && row[len(target)] <= maxDistance {
		*out = append(*out, Match{Word: prefix, Info: node.info, Distance: row[len(target)]})
	}

	// No word below this node can come back within tolerance.
	if minInRow > maxDistance {
		return
	}
	for cr, child := range node.children {
		searchNode(child, cr, prefix+string(cr), target, row, maxDistance, out)
	}
}
