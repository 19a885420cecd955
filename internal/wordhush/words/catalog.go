// Package words holds the embedded CEFR word catalog the selector draws
// from.
package words

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
)

//go:embed words.json
var wordsJSON []byte

var (
	catalogOnce sync.Once
	catalog     map[string][]string
	catalogErr  error
)

func loadCatalog() (map[string][]string, error) {
	catalogOnce.Do(func() {
		var parsed map[string][]string
		if err := json.Unmarshal(wordsJSON, &parsed); err != nil {
			catalogErr = fmt.Errorf("parse embedded word catalog failed: %w", err)
			return
		}
		catalog = parsed
	})
	return catalog, catalogErr
}

// ForLevel returns every lowercased candidate word for the difficulty,
// concatenating its CEFR bands.
func ForLevel(level model.Level) ([]string, error) {
	tiers, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, band := range level.CEFRTiers() {
		for _, word := range tiers[band] {
			word = strings.ToLower(strings.TrimSpace(word))
			if word != "" {
				out = append(out, word)
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no words available for level %s", level)
	}
	return out, nil
}
