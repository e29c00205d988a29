// package favorites maintains the set of favorited hymn identifiers.
package favorites

import (
	"encoding/json"
)

// Key is the fixed key the favorites set is persisted under.
const Key = "hymnFavorites"

// KV is the persistent key/value string store the favorites set lives in.
// Implemented by repositories.KVRepository.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store maintains a set of favorited hymn ids in a KV store under [Key].
//
// Favorites are best-effort state, not safety-critical: a missing or
// corrupt persisted value reads as an empty set, and persistence failures
// never propagate to the caller.
type Store struct {
	kv KV
}

// NewStore creates a Store backed by kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// IsFavorite reports whether id is in the persisted set.
func (s *Store) IsFavorite(id string) bool {
	for _, fav := range s.All() {
		if fav == id {
			return true
		}
	}
	return false
}

// Toggle adds id to the set if absent, removes it if present, and persists
// the updated set immediately. Toggling twice restores the original set.
func (s *Store) Toggle(id string) {
	favs := s.All()

	idx := -1
	for i, fav := range favs {
		if fav == id {
			idx = i
			break
		}
	}

	if idx == -1 {
		favs = append(favs, id)
	} else {
		favs = append(favs[:idx], favs[idx+1:]...)
	}

	s.persist(favs)
}

// All returns the favorited ids in insertion order.
// Read failures and malformed values yield an empty set.
func (s *Store) All() []string {
	raw, err := s.kv.Get(Key)
	if err != nil || raw == "" {
		return nil
	}

	var favs []string
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		return nil
	}
	return favs
}

func (s *Store) persist(favs []string) {
	if favs == nil {
		favs = []string{}
	}

	data, err := json.Marshal(favs)
	if err != nil {
		return
	}

	// Best effort; a failed write surfaces on the next read as stale state.
	_ = s.kv.Set(Key, string(data))
}
