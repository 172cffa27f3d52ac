package ortograf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/unicode/norm"
)

// Dictionary file format, one entry per line:
//
//	palabra|categoría|género|número|extra|frecuencia
//
// Trailing fields may be omitted ("mesa|sustantivo|f|s" or just
// "mesa"). Lines starting with '#' and blank lines are skipped. Input
// is NFC-normalized so that composed and decomposed accents compare
// equal in the trie.

// LoadDictionary reads a pipe-delimited dictionary file into a new
// trie.
func LoadDictionary(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	t := NewTrie()
	if err := loadEntries(t, bufio.NewScanner(f), nil); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// LoadDictionaryMmap reads a dictionary through a memory mapping,
// avoiding the copy for the large frequency-list files.
func LoadDictionaryMmap(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	t := NewTrie()
	if err := loadEntries(t, bufio.NewScanner(bytes.NewReader(m)), nil); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// LoadWordList reads a one-word-per-line file; every word gets default
// metadata.
func LoadWordList(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	t := NewTrie()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		t.InsertWord(norm.NFC.String(word))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// AppendFromFile adds the entries of a pipe-delimited file to an
// existing trie and returns how many were added.
func AppendFromFile(t *Trie, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	count := 0
	if err := loadEntries(t, bufio.NewScanner(f), &count); err != nil {
		return count, fmt.Errorf("read %s: %w", path, err)
	}
	return count, nil
}

// AppendCustomWord appends a single entry line to a user dictionary
// file, creating it if needed.
func AppendCustomWord(path, word string, info WordInfo) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open custom dictionary %s: %w", path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s|%s|%s|%s|%s|%d\n",
		word, info.Category, info.Gender, info.Number, info.Extra, info.Frequency)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}

// MergeTries combines several tries into one. The frequency-dominance
// insert rule resolves duplicates.
func MergeTries(tries ...*Trie) *Trie {
	out := NewTrie()
	for _, t := range tries {
		t.Words(func(word string, info WordInfo) {
			out.Insert(word, info)
		})
	}
	return out
}

func loadEntries(t *Trie, sc *bufio.Scanner, count *int) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, info, ok := parseEntry(line)
		if !ok {
			continue
		}
		t.Insert(word, info)
		if count != nil {
			*count++
		}
	}
	return sc.Err()
}

func parseEntry(line string) (string, WordInfo, bool) {
	parts := strings.Split(norm.NFC.String(line), "|")
	word := strings.TrimSpace(parts[0])
	if word == "" {
		return "", WordInfo{}, false
	}

	info := DefaultWordInfo()
	if len(parts) > 1 {
		info.Category = ParseCategory(parts[1])
	}
	if len(parts) > 2 {
		info.Gender = ParseGender(parts[2])
	}
	if len(parts) > 3 {
		info.Number = ParseNumber(parts[3])
	}
	if len(parts) > 4 {
		info.Extra = parts[4]
	}
	if len(parts) > 5 {
		if freq, err := strconv.Atoi(strings.TrimSpace(parts[5])); err == nil && freq > 0 {
			info.Frequency = freq
		}
	}
	return word, info, true
}
