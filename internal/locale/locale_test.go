package locale

import "testing"

func TestSpanishDefault(t *testing.T) {
	c, err := New("", nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if c.Locale() != "es" {
		t.Fatalf("expected es, got %s", c.Locale())
	}
	if got := c.T(KeySelected, "Ana"); got != "Seleccionado: Ana" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := c.T(KeyLoaded, 3); got != "Se cargaron 3 nombres." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestEnglishRegion(t *testing.T) {
	c, err := New("en-GB", nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := c.T(KeySelected, "Ana"); got != "Selected: Ana" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUnsupportedFallsBack(t *testing.T) {
	c, err := New("not a locale", nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := c.T(KeySpinning); got != "Girando..." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestOverrides(t *testing.T) {
	c, err := New("en", map[string]string{KeySelected: "Winner: %s!"})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := c.T(KeySelected, "Luis"); got != "Winner: Luis!" {
		t.Fatalf("override not applied: %q", got)
	}
	if got := c.T(KeySpinning); got != "Spinning..." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestEveryLocaleHasEveryKey(t *testing.T) {
	for _, id := range Supported() {
		for key := range builtin[DefaultLocale] {
			if _, ok := builtin[id][key]; !ok {
				t.Fatalf("locale %s missing %s", id, key)
			}
		}
	}
}
