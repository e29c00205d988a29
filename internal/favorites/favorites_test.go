package favorites

import (
	"errors"
	"testing"

	tu "github.com/kimandshin/hymn/internal/testing"
)

func TestStore(t *testing.T) {
	t.Run("Empty Store Has No Favorites", func(t *testing.T) {
		store := NewStore(tu.NewMemoryKV())

		if store.IsFavorite("h1") {
			t.Error("expected h1 to not be a favorite")
		}
		if got := store.All(); len(got) != 0 {
			t.Errorf("expected empty set, got %v", got)
		}
	})

	t.Run("Toggle Adds Then Removes", func(t *testing.T) {
		store := NewStore(tu.NewMemoryKV())

		store.Toggle("h1")
		if !store.IsFavorite("h1") {
			t.Fatal("expected h1 to be a favorite after first toggle")
		}

		store.Toggle("h1")
		if store.IsFavorite("h1") {
			t.Error("expected h1 removed after second toggle")
		}
	})

	t.Run("Double Toggle Restores Original Set", func(t *testing.T) {
		store := NewStore(tu.NewMemoryKV())
		store.Toggle("h1")
		store.Toggle("h2")
		store.Toggle("h3")

		store.Toggle("h2")
		store.Toggle("h2")

		got := store.All()
		want := []string{"h1", "h3", "h2"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("Preserves Insertion Order", func(t *testing.T) {
		store := NewStore(tu.NewMemoryKV())
		store.Toggle("h3")
		store.Toggle("h1")
		store.Toggle("h2")

		got := store.All()
		want := []string{"h3", "h1", "h2"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("Persists Under Fixed Key", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		store := NewStore(kv)

		store.Toggle("h1")

		if kv.Values[Key] != `["h1"]` {
			t.Errorf("expected [\"h1\"] under %q, got %q", Key, kv.Values[Key])
		}
	})

	t.Run("Removing Last Favorite Persists Empty Array", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		store := NewStore(kv)

		store.Toggle("h1")
		store.Toggle("h1")

		if kv.Values[Key] != `[]` {
			t.Errorf("expected empty JSON array, got %q", kv.Values[Key])
		}
	})

	t.Run("Corrupt Value Reads As Empty Set", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		kv.Values[Key] = "{not json"
		store := NewStore(kv)

		if got := store.All(); got != nil {
			t.Errorf("expected nil for corrupt value, got %v", got)
		}
		if store.IsFavorite("h1") {
			t.Error("expected no favorites from corrupt value")
		}
	})

	t.Run("Toggle Recovers From Corrupt Value", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		kv.Values[Key] = "garbage"
		store := NewStore(kv)

		store.Toggle("h1")

		got := store.All()
		if len(got) != 1 || got[0] != "h1" {
			t.Errorf("expected [h1] after recovering, got %v", got)
		}
	})

	t.Run("Read Failure Reads As Empty Set", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		kv.GetErr = errors.New("db closed")
		store := NewStore(kv)

		if got := store.All(); got != nil {
			t.Errorf("expected nil on read failure, got %v", got)
		}
	})

	t.Run("Write Failure Does Not Panic", func(t *testing.T) {
		kv := tu.NewMemoryKV()
		kv.SetErr = errors.New("disk full")
		store := NewStore(kv)

		store.Toggle("h1")

		// Nothing persisted, so the set stays empty.
		if store.IsFavorite("h1") {
			t.Error("expected failed write to leave the set empty")
		}
	})
}
