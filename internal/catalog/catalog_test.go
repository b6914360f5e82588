package catalog

import (
	"testing"
	"time"

	"dailylect/internal/models"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	c := Default()

	words := c.Words()
	if len(words) < 10 {
		t.Fatalf("catalog has %d words, want at least 10", len(words))
	}

	seen := make(map[string]bool)
	translations := make(map[string]bool)
	for _, w := range words {
		if seen[w.ID] {
			t.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
		translations[w.Translation] = true

		if _, ok := c.DialectByID(w.DialectID); !ok {
			t.Errorf("word %q references unknown dialect %q", w.ID, w.DialectID)
		}
		if w.Word == "" || w.Translation == "" {
			t.Errorf("word %q has empty word or translation", w.ID)
		}
	}

	// The quiz generator needs at least 4 distinct translations to build a
	// question's option set.
	if len(translations) < 4 {
		t.Errorf("catalog has %d distinct translations, want at least 4", len(translations))
	}

	if len(c.Dialects()) != 6 {
		t.Errorf("got %d dialects, want 6", len(c.Dialects()))
	}
}

func TestNewRejectsDuplicateWordIDs(t *testing.T) {
	dialects := []models.Dialect{{ID: "d1", Name: "Test"}}
	words := []models.Word{
		{ID: "w1", DialectID: "d1", Word: "a", Translation: "a"},
		{ID: "w1", DialectID: "d1", Word: "b", Translation: "b"},
	}

	if _, err := New(dialects, words); err == nil {
		t.Error("New() accepted duplicate word ids")
	}
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	dialects := []models.Dialect{{ID: "d1", Name: "Test"}}
	words := []models.Word{
		{ID: "w1", DialectID: "nope", Word: "a", Translation: "a"},
	}

	if _, err := New(dialects, words); err == nil {
		t.Error("New() accepted word with unknown dialect")
	}
}

func TestWordOfTheDay(t *testing.T) {
	c := Default()
	date := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	word, ok := c.WordOfTheDay("tagalog", date)
	if !ok {
		t.Fatal("WordOfTheDay() returned no word for tagalog")
	}
	if word.DialectID != "tagalog" {
		t.Errorf("word %q belongs to dialect %q, want tagalog", word.ID, word.DialectID)
	}

	// Same calendar date yields the same word regardless of time of day.
	later := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	again, _ := c.WordOfTheDay("tagalog", later)
	if again.ID != word.ID {
		t.Errorf("same date picked %q then %q", word.ID, again.ID)
	}

	// The next day rotates to a different word.
	next, _ := c.WordOfTheDay("tagalog", date.AddDate(0, 0, 1))
	if next.ID == word.ID {
		t.Errorf("consecutive days picked the same word %q", word.ID)
	}

	if _, ok := c.WordOfTheDay("klingon", date); ok {
		t.Error("WordOfTheDay() returned a word for an unknown dialect")
	}
}

func TestWordOfTheDayCoversAllWords(t *testing.T) {
	c := Default()
	dialectWords := c.WordsForDialect("cebuano")

	picked := make(map[string]bool)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < len(dialectWords); i++ {
		w, ok := c.WordOfTheDay("cebuano", start.AddDate(0, 0, i))
		if !ok {
			t.Fatal("WordOfTheDay() returned no word")
		}
		picked[w.ID] = true
	}

	if len(picked) != len(dialectWords) {
		t.Errorf("rotation covered %d of %d words", len(picked), len(dialectWords))
	}
}
