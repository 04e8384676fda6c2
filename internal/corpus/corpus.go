// Package corpus loads the quote archive and selects phrases.
package corpus

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// DebugEnv forces Random to return a fixed quote for reproducible runs.
const DebugEnv = "TYPETICK_DEBUG"

// Quote is one record of the corpus archive. Records are stored on the
// wire as JSON tuples: [author, title, text] or [author, title, text, id].
type Quote struct {
	Author string
	Title  string
	Text   string
	ID     int64
}

// UnmarshalJSON decodes the tuple representation.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("quote record is not an array: %w", err)
	}
	if len(fields) < 3 {
		return fmt.Errorf("quote record has %d fields, want at least 3", len(fields))
	}
	if err := json.Unmarshal(fields[0], &q.Author); err != nil {
		return fmt.Errorf("quote author: %w", err)
	}
	if err := json.Unmarshal(fields[1], &q.Title); err != nil {
		return fmt.Errorf("quote title: %w", err)
	}
	if err := json.Unmarshal(fields[2], &q.Text); err != nil {
		return fmt.Errorf("quote text: %w", err)
	}
	if len(fields) > 3 {
		if err := json.Unmarshal(fields[3], &q.ID); err != nil {
			return fmt.Errorf("quote id: %w", err)
		}
	}
	return nil
}

// Corpus holds the loaded quotes and a private random source.
type Corpus struct {
	quotes []Quote
	rnd    *rand.Rand
}

// New builds a corpus from pre-parsed quotes, dropping records with empty
// text. An empty result is an error: every round needs a non-empty phrase.
func New(quotes []Quote) (*Corpus, error) {
	kept := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Text == "" {
			continue
		}
		kept = append(kept, q)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return &Corpus{
		quotes: kept,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Load reads a gzipped JSON quote archive from disk.
func Load(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only archive.
			_ = cerr
		}
	}()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus archive: %w", err)
	}
	defer func() {
		if cerr := gz.Close(); cerr != nil {
			_ = cerr
		}
	}()

	var quotes []Quote
	if err := json.NewDecoder(gz).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	return New(quotes)
}

// Random returns a uniformly selected quote. When DebugEnv is set it
// returns a fixed quote instead.
func (c *Corpus) Random() Quote {
	if os.Getenv(DebugEnv) != "" {
		return Quote{Author: "Author", Title: "Title", Text: "Text", ID: 1}
	}
	return c.quotes[c.rnd.Intn(len(c.quotes))]
}

// Len reports the number of usable quotes.
func (c *Corpus) Len() int {
	return len(c.quotes)
}
