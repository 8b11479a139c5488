package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the API process.
// All values must come from env (or env-file loaded by the process runner).
// No business logic should depend on raw environment variables.
type Config struct {
	App       AppConfig
	CORS      CORSConfig
	OpenAI    OpenAIConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type AppConfig struct {
	Env      string
	Port     int
	LogLevel string
}

type CORSConfig struct {
	// AllowedOrigins is the exact-match origin allow-list.
	// Requests without an Origin header always pass.
	AllowedOrigins []string
}

type OpenAIConfig struct {
	// APIKey empty (or left at the sample placeholder) switches all
	// AI-backed routes into fallback mode instead of failing.
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	AccessTTL   time.Duration
}

type RateLimitConfig struct {
	// Max requests per Window per client address.
	Max    int
	Window time.Duration
}

type RedisConfig struct {
	// Addr is optional. When set, the rate limiter shares its window
	// counters through Redis instead of process memory.
	Addr string
}

// apiKeyPlaceholder is the sample value shipped in .env.example; treat it
// the same as an unset key.
const apiKeyPlaceholder = "your_openai_key_here"

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = envOr("APP_ENV", "local")
	{
		n, err := intOr("APP_PORT", 3000)
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.App.Port = n
	}
	c.App.LogLevel = strings.TrimSpace(os.Getenv("LOG_LEVEL"))

	c.CORS.AllowedOrigins = splitList(envOr("ALLOWED_ORIGINS", "http://localhost:5173"))

	c.OpenAI.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if c.OpenAI.APIKey == apiKeyPlaceholder {
		c.OpenAI.APIKey = ""
	}
	c.OpenAI.Model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	{
		n, err := intOr("OPENAI_MAX_TOKENS", 120)
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.OpenAI.MaxTokens = n
	}
	c.OpenAI.Temperature = 0.3

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.JWTIssuer = strings.TrimSpace(os.Getenv("JWT_ISSUER"))
	c.Auth.JWTAudience = strings.TrimSpace(os.Getenv("JWT_AUDIENCE"))
	c.Auth.AccessTTL = durationOr("JWT_ACCESS_TTL", 24*time.Hour)

	{
		n, err := intOr("RATE_LIMIT_MAX", 100)
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.RateLimit.Max = n
	}
	c.RateLimit.Window = durationOr("RATE_LIMIT_WINDOW", 15*time.Minute)

	c.Redis.Addr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("ALLOWED_ORIGINS must list at least one origin"))
	}

	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		} else {
			// Local-friendly default; production must be explicit.
			c.Auth.JWTSecret = "your_default_secret"
		}
	}
	if c.Auth.AccessTTL <= 0 {
		c.Auth.AccessTTL = 24 * time.Hour
	}

	if c.RateLimit.Max <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX must be > 0, got %d", c.RateLimit.Max))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be > 0, got %s", c.RateLimit.Window))
	}

	if c.OpenAI.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("OPENAI_MAX_TOKENS must be > 0, got %d", c.OpenAI.MaxTokens))
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

// AIEnabled reports whether an external completion provider is configured.
func (c Config) AIEnabled() bool {
	return c.OpenAI.APIKey != ""
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func durationOr(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
