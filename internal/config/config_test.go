package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		GeminiKeyEnv, OpenAIKeyEnv,
		"JOBEXTRACT_PROVIDER", "JOBEXTRACT_MODEL", "JOBEXTRACT_BASE_URL",
		"JOBEXTRACT_OUT", "JOBEXTRACT_FETCH_TIMEOUT", "JOBEXTRACT_PROXIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "gemini" || cfg.Model != DefaultModel || cfg.OutDir != DefaultOutDir {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FetchTimeout().Seconds() != 30 {
		t.Fatalf("FetchTimeout() = %v, want 30s", cfg.FetchTimeout())
	}
}

func TestLoadJSON5AndEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := `{
  // comments and trailing commas are fine
  provider: "openai",
  model: "llama-3.3-70b-versatile",
  base_url: "https://api.groq.com/openai/v1",
  condense: true,
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("JOBEXTRACT_OUT", "/tmp/postings")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "openai" || cfg.Model != "llama-3.3-70b-versatile" || !cfg.Condense {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if cfg.OutDir != "/tmp/postings" {
		t.Fatalf("OutDir = %q, want env override", cfg.OutDir)
	}
}

func TestAPIKeyMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = cfg.LLMSettings()
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("LLMSettings() error = %v, want ConfigError", err)
	}
	if configErr.Error() != "GEMINI_API_KEY is not set; export it or add it to .env" {
		t.Fatalf("unexpected message: %q", configErr.Error())
	}
}

func TestAPIKeyPerProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv(GeminiKeyEnv, "gem-key")
	t.Setenv(OpenAIKeyEnv, "oai-key")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	settings, err := cfg.LLMSettings()
	if err != nil || settings.APIKey != "gem-key" {
		t.Fatalf("LLMSettings() = %+v, %v; want gemini key", settings, err)
	}

	cfg.Provider = "OpenAI"
	if key, err := cfg.APIKey(); err != nil || key != "oai-key" {
		t.Fatalf("APIKey() = %q, %v; want openai key", key, err)
	}
}

func TestInitAndLoadProxies(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "jobextract")

	created, err := Init(dir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Init() created %v, want 2 files", created)
	}
	again, err := Init(dir)
	if err != nil || len(again) != 0 {
		t.Fatalf("second Init() = %v, %v; want nothing created", again, err)
	}

	if err := os.WriteFile(filepath.Join(dir, ProxiesFileName), []byte("# comment\nhttp://a:1\n\nhttp://b:2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := LoadProxies("", dir)
	if err != nil {
		t.Fatalf("LoadProxies() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"http://a:1", "http://b:2"}) {
		t.Fatalf("LoadProxies() = %v", got)
	}

	got, _ = LoadProxies("http://c:3, ,http://d:4", dir)
	if !reflect.DeepEqual(got, []string{"http://c:3", "http://d:4"}) {
		t.Fatalf("LoadProxies(flag) = %v", got)
	}
}
