package utils

import "testing"

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) != 16 {
		t.Errorf("len(id) = %d, want 16 hex chars", len(id))
	}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestStringToSeed(t *testing.T) {
	// Детерминизм: одна фраза - один сид
	if StringToSeed("муравьиная тропа") != StringToSeed("муравьиная тропа") {
		t.Error("same phrase must give same seed")
	}

	// Разные фразы практически всегда дают разные сиды
	if StringToSeed("alpha") == StringToSeed("beta") {
		t.Error("distinct phrases collided")
	}

	// Пустая строка - валидный вход
	_ = StringToSeed("")
}
