package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/gosuda/littleknowledge/internal/content"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// SiteConfig controls how links and assets are prefixed. When the site is
// published to a GitHub Pages project page it lives under /<repo>, so every
// href and asset URL needs that prefix.
type SiteConfig struct {
	RepoName      string
	GitHubActions bool
	BasePath      string // "" or "/repo", never a trailing slash
	AssetPrefix   string // "" or "/repo/", always a trailing slash when set
	Lang          language.Tag
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	Dir    string
	Clean  bool
	Strict bool // fail when the scroll-to-top wasm assets were not generated
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	readTimeout, err := getEnvDuration("LK_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("LK_SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	rps, err := getEnvFloat("LK_RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	burst, err := getEnvInt("LK_RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	githubActions, err := getEnvBool("GITHUB_ACTIONS", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	exportClean, err := getEnvBool("LK_EXPORT_CLEAN", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	exportStrict, err := getEnvBool("LK_EXPORT_STRICT", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	lang, err := getEnvLanguage("LK_SITE_LANG", content.Lang)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	repoName := getEnv("LK_REPO_NAME", "little-knowledge")

	// Project pages are served from /<repo>; local builds from the root.
	defaultBase := ""
	if githubActions {
		defaultBase = "/" + repoName
	}
	basePath := NormalizeBasePath(getEnv("LK_BASE_PATH", defaultBase))
	// Assets follow the resolved base path unless pointed elsewhere.
	assetPrefix := NormalizeAssetPrefix(getEnv("LK_ASSET_PREFIX", basePath))

	cfg := &Config{
		Server: ServerConfig{
			Addr:           getEnv("LK_SERVER_ADDR", ":8080"),
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			CORSOrigins:    getEnvList("LK_CORS_ORIGINS", []string{"*"}),
			RateLimitRPS:   rps,
			RateLimitBurst: burst,
		},
		Site: SiteConfig{
			RepoName:      repoName,
			GitHubActions: githubActions,
			BasePath:      basePath,
			AssetPrefix:   assetPrefix,
			Lang:          lang,
		},
		Export: ExportConfig{
			Dir:    getEnv("LK_EXPORT_DIR", "out"),
			Clean:  exportClean,
			Strict: exportStrict,
		},
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and value bounds.
func (c *Config) validate() error {
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("LK_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("LK_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("LK_RATE_LIMIT_RPS must be positive, got %g", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("LK_RATE_LIMIT_BURST must be >= 1, got %d", c.Server.RateLimitBurst)
	}
	if c.Export.Dir == "" {
		return errors.New("LK_EXPORT_DIR must not be empty")
	}
	if strings.ContainsAny(c.Site.BasePath, " ?#") {
		return fmt.Errorf("LK_BASE_PATH %q must be a plain URL path", c.Site.BasePath)
	}

	if c.Site.GitHubActions && c.Site.BasePath == "" {
		log.Warn().Msg("GITHUB_ACTIONS is set but LK_BASE_PATH is empty; project-page links will break")
	}

	return nil
}

// NormalizeBasePath returns p with a single leading slash and no trailing
// slash. The root path normalizes to "".
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// NormalizeAssetPrefix returns p with a trailing slash, or "" when unset.
// Absolute URLs (a CDN origin) keep their scheme and host.
func NormalizeAssetPrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.Contains(p, "://") && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/") + "/"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as float: %w", key, v, err)
	}
	return f, nil
}

func getEnvLanguage(key string, fallback language.Tag) (language.Tag, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	tag, err := language.Parse(v)
	if err != nil {
		return language.Und, fmt.Errorf("parsing %s=%q as language tag: %w", key, v, err)
	}
	return tag, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s=%q as bool: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
