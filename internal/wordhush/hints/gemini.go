package hints

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	commonconfig "github.com/wordhush/wordhush-bot-go/internal/common/config"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
)

const hintSystemPrompt = `
You are an expert English word master. Your task is to create hints for the specific English word provided, based on the difficulty level: Easy, Medium, Hard, or Extreme.

For the given word, generate **10-20 hints** that help a user guess the word, but you **must never include the word itself, any form of the word, or any derivative** in the hints. Hints can include:
- Definitions of the word (without using the word itself)
- Synonyms or antonyms (without revealing the word)
- Example sentences with the word blanked out
- Related concepts, contexts, or situations
- Etymology or origin information
- Usage descriptions, characteristics, or associations

Your output must be in **strict JSON format** as follows:
{
  "words": ["all valid forms of the provided word, e.g., verb conjugations, plural forms, adjective/adverb forms, etc."],
  "hints": ["array of 10-20 hints as strings"],
  "sentence": "an example sentence correctly using the provided word"
}

**Important Rules:**
1. The "words" array must include all correct forms of the provided word only.
2. Hints must never contain the word itself, any of its forms, or derivatives.
3. Adjust hint complexity according to the level:
   - Easy: common words, simple and direct hints
   - Medium: moderately common words, slightly trickier hints
   - Hard: less common words, challenging hints
   - Extreme: rare or archaic words, very subtle and abstract hints
4. Output strictly as JSON **without any backticks, code blocks, comments, or extra formatting**.
5. Do not add explanations, instructions, or anything outside the JSON.
6. Make hints creative, indirect, and engaging for guessing the word.
7. "sentence" property should include the correct word as that's only shown when game ends.
`

// apiKeyErrorPatterns identify failures caused by the key rather than the
// request, which warrant rotating to the next key instead of backing off.
var apiKeyErrorPatterns = []string{
	"api key",
	"unauthorized",
	"invalid key",
	"quota exceeded",
	"rate limit",
	"forbidden",
	"401",
	"403",
	"429",
}

// generatedHints mirrors the JSON the model is instructed to emit.
type generatedHints struct {
	Words    []string `json:"words"`
	Hints    []string `json:"hints"`
	Sentence string   `json:"sentence"`
}

// GeminiGenerator produces hint sets through the Gemini API, rotating keys
// on auth failures and cycling models across attempts. Every successful
// generation is stored through to the database cache.
type GeminiGenerator struct {
	cfg     commonconfig.GeminiConfig
	repo    *repository.Repository
	logger  *slog.Logger
	limiter *rate.Limiter

	mu        sync.Mutex
	clients   map[string]*genai.Client
	apiKeyIdx int

	// sleep is swappable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGeminiGenerator creates a GeminiGenerator.
func NewGeminiGenerator(cfg commonconfig.GeminiConfig, repo *repository.Repository, logger *slog.Logger) *GeminiGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	return &GeminiGenerator{
		cfg:     cfg,
		repo:    repo,
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
		clients: make(map[string]*genai.Client),
		sleep:   sleepCtx,
	}
}

// HintsFor generates a hint set for the word and caches it. Attempts are
// capped at keys x models x 2.
func (g *GeminiGenerator) HintsFor(ctx context.Context, level model.Level, word string) (*WordHints, error) {
	if len(g.cfg.APIKeys) == 0 || len(g.cfg.Models) == 0 {
		return nil, wherrors.HintGenerationError{Word: word, Err: fmt.Errorf("no api keys or models configured")}
	}

	maxRetries := len(g.cfg.APIKeys) * len(g.cfg.Models) * 2
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, wherrors.HintGenerationError{Word: word, Err: err}
		}

		modelName := g.cfg.Models[(attempt-1)%len(g.cfg.Models)]
		generated, err := g.generateOnce(ctx, modelName, level, word)
		if err == nil {
			g.storeThrough(ctx, level, word, generated)
			return &WordHints{
				Words:        generated.Words,
				Hints:        generated.Hints,
				Sentence:     generated.Sentence,
				ResolvedWord: word,
			}, nil
		}

		lastErr = err
		if isAPIKeyError(err) {
			g.rotateKey()
			g.logger.Warn("gemini_key_rotated", "model", modelName, "attempt", attempt, "err", err)
			continue
		}

		g.logger.Warn("gemini_generation_retry", "model", modelName, "attempt", attempt, "err", err)
		if sleepErr := g.sleep(ctx, time.Second); sleepErr != nil {
			return nil, wherrors.HintGenerationError{Word: word, Err: sleepErr}
		}
	}

	return nil, wherrors.HintGenerationError{Word: word, Err: lastErr}
}

func (g *GeminiGenerator) generateOnce(ctx context.Context, modelName string, level model.Level, word string) (*generatedHints, error) {
	client, err := g.currentClient(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("%s\n\n**THE WORD TO CREATE HINTS FOR:** %s\n**DIFFICULTY LEVEL:** %s\n\nCreate hints for the word %q at %s difficulty level.",
		hintSystemPrompt, word, level, word, level)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	response, err := client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(response.Text())
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var parsed generatedHints
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("decode generated hints: %w", err)
	}
	if len(parsed.Hints) == 0 || len(parsed.Words) == 0 || parsed.Sentence == "" {
		return nil, fmt.Errorf("incomplete generated hints")
	}
	return &parsed, nil
}

// storeThrough caches the generated set. Failures are logged, not returned:
// the game can run on the in-memory result.
func (g *GeminiGenerator) storeThrough(ctx context.Context, level model.Level, word string, generated *generatedHints) {
	err := g.repo.StoreHintSet(ctx, repository.HintSet{
		Word:         word,
		Level:        string(level),
		Hints:        generated.Hints,
		RelatedWords: generated.Words,
		Sentence:     generated.Sentence,
	})
	if err != nil {
		g.logger.Warn("hint_cache_store_failed", "word", word, "err", err)
	}
}

func (g *GeminiGenerator) currentClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.cfg.APIKeys[g.apiKeyIdx%len(g.cfg.APIKeys)]
	if client, ok := g.clients[key]; ok {
		return client, nil
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(g.cfg.Timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	g.clients[key] = client
	return client, nil
}

func (g *GeminiGenerator) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.apiKeyIdx = (g.apiKeyIdx + 1) % len(g.cfg.APIKeys)
}

func isAPIKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range apiKeyErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
