package browse

import (
	"testing"

	"github.com/kimandshin/hymn/internal/models"
)

func TestSessionSelection(t *testing.T) {
	t.Run("SetHymns Selects First", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		if s.SelectedID() != "h1" {
			t.Errorf("expected h1 selected, got %q", s.SelectedID())
		}
		if s.SelectedIndex() != 0 {
			t.Errorf("expected index 0, got %d", s.SelectedIndex())
		}
	})

	t.Run("Empty Collection Has No Selection", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(nil)

		if s.SelectedID() != "" {
			t.Errorf("expected no selection, got %q", s.SelectedID())
		}
		if _, ok := s.Current(); ok {
			t.Error("expected Current to report no selection")
		}
	})

	t.Run("Selection Survives Filter When Still Visible", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())
		s.Select(models.Hymn{ID: "h3"})

		gen := s.Generation()
		s.SetQuery("305") // h2 and h3 remain

		if s.SelectedID() != "h3" {
			t.Errorf("expected h3 to stay selected, got %q", s.SelectedID())
		}
		if s.Generation() != gen {
			t.Error("surviving selection must not bump the generation")
		}
	})

	t.Run("Vanished Selection Snaps To First Visible", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())
		s.Select(models.Hymn{ID: "h4"})

		s.SetQuery("grace") // h2 and h3; h4 vanishes

		if s.SelectedID() != "h2" {
			t.Errorf("expected first visible h2, got %q", s.SelectedID())
		}
	})

	t.Run("Empty Filter Result Clears Selection", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.SetQuery("no-such-hymn")

		if s.SelectedID() != "" {
			t.Errorf("expected cleared selection, got %q", s.SelectedID())
		}

		// Clearing the query restores the view and selects its first hymn.
		s.SetQuery("")
		if s.SelectedID() != "h1" {
			t.Errorf("expected h1 after clearing query, got %q", s.SelectedID())
		}
	})
}

func TestSessionNavigation(t *testing.T) {
	t.Run("Next And Previous", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.Advance(1)
		if s.SelectedID() != "h2" {
			t.Errorf("expected h2, got %q", s.SelectedID())
		}

		s.Advance(-1)
		if s.SelectedID() != "h1" {
			t.Errorf("expected h1, got %q", s.SelectedID())
		}
	})

	t.Run("Wraps At Both Ends", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.Advance(-1)
		if s.SelectedID() != "h4" {
			t.Errorf("expected wrap to h4, got %q", s.SelectedID())
		}

		s.Advance(1)
		if s.SelectedID() != "h1" {
			t.Errorf("expected wrap back to h1, got %q", s.SelectedID())
		}
	})

	t.Run("Full Cycle Returns To Start", func(t *testing.T) {
		s := NewSession(nil)
		hymns := testHymns()
		s.SetHymns(hymns)

		for range hymns {
			s.Advance(1)
		}

		if s.SelectedID() != "h1" {
			t.Errorf("expected h1 after %d steps, got %q", len(hymns), s.SelectedID())
		}
	})

	t.Run("Empty View Is A No-Op", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(nil)

		gen := s.Generation()
		s.Advance(1)
		s.Advance(-1)

		if s.SelectedID() != "" {
			t.Errorf("expected no selection, got %q", s.SelectedID())
		}
		if s.Generation() != gen {
			t.Error("advancing an empty view must not bump the generation")
		}
	})

	t.Run("Missing Selection Lands On First", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		// Simulate a selection the filtered view no longer contains.
		s.Select(models.Hymn{ID: "gone"})

		s.Advance(1)
		if s.SelectedID() != "h1" {
			t.Errorf("expected fallback to h1, got %q", s.SelectedID())
		}
	})

	t.Run("SelectIndex Out Of Range Is Ignored", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.SelectIndex(99)
		s.SelectIndex(-1)

		if s.SelectedID() != "h1" {
			t.Errorf("expected selection unchanged, got %q", s.SelectedID())
		}
	})
}

func TestSessionZoom(t *testing.T) {
	t.Run("Defaults To 1.0", func(t *testing.T) {
		s := NewSession(nil)
		if s.Zoom() != 1.0 {
			t.Errorf("expected zoom 1.0, got %v", s.Zoom())
		}
	})

	t.Run("Steps By Exactly 0.1", func(t *testing.T) {
		s := NewSession(nil)

		s.ZoomIn()
		if s.Zoom() != 1.1 {
			t.Errorf("expected 1.1, got %v", s.Zoom())
		}

		s.ZoomOut()
		s.ZoomOut()
		if s.Zoom() != 0.9 {
			t.Errorf("expected 0.9, got %v", s.Zoom())
		}
	})

	t.Run("Clamps At Bounds", func(t *testing.T) {
		s := NewSession(nil)

		for i := 0; i < 40; i++ {
			s.ZoomIn()
		}
		if s.Zoom() != 3.0 {
			t.Errorf("expected clamp at 3.0, got %v", s.Zoom())
		}

		for i := 0; i < 40; i++ {
			s.ZoomOut()
		}
		if s.Zoom() != 0.5 {
			t.Errorf("expected clamp at 0.5, got %v", s.Zoom())
		}
	})

	t.Run("Resets On Selection Change", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.ZoomIn()
		s.ZoomIn()
		s.Advance(1)

		if s.Zoom() != 1.0 {
			t.Errorf("expected zoom reset to 1.0, got %v", s.Zoom())
		}
	})

	t.Run("Survives Filter When Selection Survives", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		s.ZoomIn()
		s.SetQuery("how great")

		if s.SelectedID() != "h1" {
			t.Fatalf("expected h1 to survive, got %q", s.SelectedID())
		}
		if s.Zoom() != 1.1 {
			t.Errorf("expected zoom preserved at 1.1, got %v", s.Zoom())
		}
	})
}

func TestSessionGeneration(t *testing.T) {
	t.Run("Bumps On Every Selection Change", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		gen := s.Generation()
		s.Advance(1)
		if s.Generation() != gen+1 {
			t.Errorf("expected generation %d, got %d", gen+1, s.Generation())
		}

		s.Select(models.Hymn{ID: "h4"})
		if s.Generation() != gen+2 {
			t.Errorf("expected generation %d, got %d", gen+2, s.Generation())
		}
	})

	t.Run("Reselecting Same Hymn Still Bumps", func(t *testing.T) {
		s := NewSession(nil)
		s.SetHymns(testHymns())

		gen := s.Generation()
		s.SelectIndex(0)
		if s.Generation() != gen+1 {
			t.Errorf("expected generation %d, got %d", gen+1, s.Generation())
		}
	})
}

func TestSessionFavoritesOnly(t *testing.T) {
	favs := setFavorer{"h2": true}

	s := NewSession(favs)
	s.SetHymns(testHymns())

	if on := s.ToggleFavoritesOnly(); !on {
		t.Fatal("expected favorites-only to turn on")
	}

	if len(s.Filtered()) != 1 {
		t.Fatalf("expected 1 favorite visible, got %d", len(s.Filtered()))
	}
	if s.SelectedID() != "h2" {
		t.Errorf("expected h2 selected, got %q", s.SelectedID())
	}

	if on := s.ToggleFavoritesOnly(); on {
		t.Fatal("expected favorites-only to turn off")
	}
	if len(s.Filtered()) != 4 {
		t.Errorf("expected full view restored, got %d hymns", len(s.Filtered()))
	}
}
