package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey            string
	LLMAPIKeyFallbacks   []string
	LLMAPIBase           string
	LLMModel             string
	VisionModel          string // empty = vision fallback disabled
	LLMTemperature       float64
	LLMMaxTokens         int
	LLMRateLimit         float64 // model calls per second; 0 = unlimited
	LLMRateBurst         int
	MaxCVChars           int
	MaxJDChars           int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	LLMClient            *llm.Client // nil = narrative/vision disabled
}

var (
	cfg        Config
	llmLimiter *rate.Limiter // nil = unlimited
)

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	llmLimiter = nil
	if cfg.LLMRateLimit > 0 {
		burst := cfg.LLMRateBurst
		if burst < 1 {
			burst = 1
		}
		llmLimiter = rate.NewLimiter(rate.Limit(cfg.LLMRateLimit), burst)
	}
}
