package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Label} {
		if name.Get() == nil {
			t.Fatalf("font %s not registered", name)
		}
	}
}

func TestUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unregistered font")
		}
	}()
	FontName("missing").Get()
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("junk", []byte("not a font"), 10); err == nil {
		t.Fatalf("expected a parse error")
	}
}
