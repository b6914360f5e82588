package catalog

import (
	"fmt"
	"time"

	"dailylect/internal/models"
)

// Catalog is the static word bank: dialects and their words, loaded once at
// process start. It is immutable after construction and safe for concurrent
// reads.
type Catalog struct {
	dialects       []models.Dialect
	words          []models.Word
	wordsByID      map[string]models.Word
	wordsByDialect map[string][]models.Word
	dialectsByID   map[string]models.Dialect
}

// New builds a catalog from static dialect and word data. Word IDs must be
// unique across the whole catalog and every word must reference a known
// dialect.
func New(dialects []models.Dialect, words []models.Word) (*Catalog, error) {
	c := &Catalog{
		dialects:       dialects,
		words:          words,
		wordsByID:      make(map[string]models.Word, len(words)),
		wordsByDialect: make(map[string][]models.Word),
		dialectsByID:   make(map[string]models.Dialect, len(dialects)),
	}

	for _, d := range dialects {
		if _, ok := c.dialectsByID[d.ID]; ok {
			return nil, fmt.Errorf("duplicate dialect id %q", d.ID)
		}
		c.dialectsByID[d.ID] = d
	}

	for _, w := range words {
		if _, ok := c.wordsByID[w.ID]; ok {
			return nil, fmt.Errorf("duplicate word id %q", w.ID)
		}
		if _, ok := c.dialectsByID[w.DialectID]; !ok {
			return nil, fmt.Errorf("word %q references unknown dialect %q", w.ID, w.DialectID)
		}
		c.wordsByID[w.ID] = w
		c.wordsByDialect[w.DialectID] = append(c.wordsByDialect[w.DialectID], w)
	}

	return c, nil
}

// Default builds the catalog from the bundled Philippine dialect word bank.
func Default() *Catalog {
	c, err := New(dialectData, wordData)
	if err != nil {
		// The bundled data is validated by tests; a bad build is a bug.
		panic(err)
	}
	return c
}

// Dialects returns all dialects in catalog order.
func (c *Catalog) Dialects() []models.Dialect {
	out := make([]models.Dialect, len(c.dialects))
	copy(out, c.dialects)
	return out
}

// Words returns all words across every dialect.
func (c *Catalog) Words() []models.Word {
	out := make([]models.Word, len(c.words))
	copy(out, c.words)
	return out
}

// DialectByID looks up a dialect.
func (c *Catalog) DialectByID(id string) (models.Dialect, bool) {
	d, ok := c.dialectsByID[id]
	return d, ok
}

// WordByID looks up a word anywhere in the catalog.
func (c *Catalog) WordByID(id string) (models.Word, bool) {
	w, ok := c.wordsByID[id]
	return w, ok
}

// WordsForDialect returns the words belonging to one dialect.
func (c *Catalog) WordsForDialect(dialectID string) []models.Word {
	words := c.wordsByDialect[dialectID]
	out := make([]models.Word, len(words))
	copy(out, words)
	return out
}

// WordOfTheDay picks the word a dialect surfaces on a given calendar date.
// The pick is deterministic (days since Unix epoch modulo the dialect's word
// count) so every user sees the same word on the same day.
func (c *Catalog) WordOfTheDay(dialectID string, date time.Time) (models.Word, bool) {
	words := c.wordsByDialect[dialectID]
	if len(words) == 0 {
		return models.Word{}, false
	}

	day := date.UTC()
	dayNumber := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
	idx := int(dayNumber % int64(len(words)))
	if idx < 0 {
		idx += len(words)
	}
	return words[idx], true
}
