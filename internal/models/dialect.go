package models

// Dialect represents a regional Philippine language variety in the catalog
type Dialect struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Color  string `json:"color"`
}

// Word represents a catalog entry for a single dialect word.
// IDs are unique across the whole catalog; translations are not (distinct
// words in different dialects may share a translation).
type Word struct {
	ID                 string `json:"id"`
	DialectID          string `json:"dialectId"`
	Word               string `json:"word"`
	Translation        string `json:"translation"`
	Pronunciation      string `json:"pronunciation"`
	Example            string `json:"example"`
	ExampleTranslation string `json:"exampleTranslation"`
}
