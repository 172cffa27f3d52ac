package ortograf

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CustomDict persists user-added words in a Redis set, one set per
// language, so custom vocabulary survives restarts and is shared
// between server instances.
type CustomDict struct {
	client *redis.Client
	key    string
}

// NewCustomDict wraps a Redis client for the given language code.
func NewCustomDict(client *redis.Client, langCode string) *CustomDict {
	return &CustomDict{
		client: client,
		key:    "ortograf:custom:" + langCode,
	}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	if err := cd.client.SAdd(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("add custom word: %w", err)
	}
	return nil
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	if err := cd.client.SRem(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("remove custom word: %w", err)
	}
	return nil
}

// All returns every stored custom word.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("list custom words: %w", err)
	}
	return words, nil
}

// LoadInto inserts every stored custom word into the trie with default
// metadata and returns how many were loaded. Must run before the trie
// is shared with concurrent readers.
func (cd *CustomDict) LoadInto(ctx context.Context, t *Trie) (int, error) {
	words, err := cd.All(ctx)
	if err != nil {
		return 0, err
	}
	for _, word := range words {
		t.InsertWord(word)
	}
	return len(words), nil
}
