package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/jobextract/internal/llm"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "jobextract"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"

	GeminiKeyEnv = "GEMINI_API_KEY"
	OpenAIKeyEnv = "OPENAI_API_KEY"

	DefaultModel  = "gemini-2.5-flash"
	DefaultOutDir = "./jobs"
)

// ConfigError reports configuration that prevents the program from running.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Config is resolved once at startup and passed to the components that need
// it.
type Config struct {
	Provider            string  `json:"provider"`
	Model               string  `json:"model"`
	BaseURL             string  `json:"base_url"`
	Temperature         float64 `json:"temperature"`
	OutDir              string  `json:"out_dir"`
	FetchTimeoutSeconds int     `json:"fetch_timeout_seconds"`
	Condense            bool    `json:"condense"`
	ListingSite         string  `json:"listing_site"`
	ListingURL          string  `json:"listing_url"`
	ListingPrefix       string  `json:"listing_prefix"`

	apiKeys map[string]string
}

func DefaultConfig() Config {
	return Config{
		Provider:            llm.ProviderGemini,
		Model:               DefaultModel,
		OutDir:              DefaultOutDir,
		FetchTimeoutSeconds: 30,
		ListingSite:         "golangprojects",
	}
}

// FetchTimeout returns the bounded wait for a single page fetch.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// CredentialEnv names the environment variable holding the credential for
// the configured provider.
func (c Config) CredentialEnv() string {
	if llm.NormalizeProvider(c.Provider) == llm.ProviderOpenAI {
		return OpenAIKeyEnv
	}
	return GeminiKeyEnv
}

// APIKey returns the credential for the configured provider.
func (c Config) APIKey() (string, error) {
	env := c.CredentialEnv()
	key := strings.TrimSpace(c.apiKeys[env])
	if key == "" {
		return "", &ConfigError{
			Key:     env,
			Message: env + " is not set; export it or add it to .env",
		}
	}
	return key, nil
}

// LLMSettings returns the provider settings, failing when the credential is
// missing.
func (c Config) LLMSettings() (llm.Settings, error) {
	key, err := c.APIKey()
	if err != nil {
		return llm.Settings{}, err
	}
	return llm.Settings{
		Provider:    c.Provider,
		Model:       c.Model,
		APIKey:      key,
		BaseURL:     c.BaseURL,
		Temperature: c.Temperature,
	}, nil
}

func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("JOBEXTRACT_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

// Load reads config.json from dir, then applies environment overrides. A
// missing or empty file yields the defaults.
func Load(dir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Provider = envString("JOBEXTRACT_PROVIDER", cfg.Provider)
	cfg.Model = envString("JOBEXTRACT_MODEL", cfg.Model)
	cfg.BaseURL = envString("JOBEXTRACT_BASE_URL", cfg.BaseURL)
	cfg.OutDir = envString("JOBEXTRACT_OUT", cfg.OutDir)
	cfg.FetchTimeoutSeconds = envInt("JOBEXTRACT_FETCH_TIMEOUT", cfg.FetchTimeoutSeconds)
	cfg.apiKeys = map[string]string{
		GeminiKeyEnv: os.Getenv(GeminiKeyEnv),
		OpenAIKeyEnv: os.Getenv(OpenAIKeyEnv),
	}
}

// Init writes default config.json and proxies.txt into dir if they don't
// already exist.
func Init(dir string) ([]string, error) {
	var created []string
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadProxies returns proxies from the flag value, JOBEXTRACT_PROXIES, or
// proxies.txt in dir, in that order of preference.
func LoadProxies(flagValue string, dir string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}
	if env := strings.TrimSpace(os.Getenv("JOBEXTRACT_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	data, err := os.ReadFile(filepath.Join(dir, ProxiesFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
