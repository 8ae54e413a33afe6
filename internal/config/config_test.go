package config

import (
	"path/filepath"
	"testing"
)

func TestValidate_InvalidScoringProvider(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Scoring: ScoringConfig{Provider: "oracle"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid scoring provider")
	}

	expected := `scoring.provider must be "token" or "openai", got "oracle"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_OpenAIRequiresAPIKey(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Scoring: ScoringConfig{Provider: "openai"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for openai provider without api key")
	}

	cfg.Scoring.APIKey = "test-key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with api key set: %v", err)
	}
}

func TestValidate_TokenProviderNeedsNoKey(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Scoring: ScoringConfig{Provider: "token"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := Config{
			HTTP:    HTTPConfig{Port: port},
			Scoring: ScoringConfig{Provider: "token"},
		}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 30 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected HTTP defaults: %+v", cfg.HTTP)
	}
	if cfg.Documents.AgreementsDir != filepath.Join("documents", "agreements") {
		t.Errorf("agreements_dir default = %q", cfg.Documents.AgreementsDir)
	}
	if cfg.Documents.TermSheetsDir != filepath.Join("documents", "term-sheets") {
		t.Errorf("term_sheets_dir default = %q", cfg.Documents.TermSheetsDir)
	}
	if cfg.Scoring.Provider != "token" {
		t.Errorf("scoring.provider default = %q", cfg.Scoring.Provider)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 5},
		Documents: DocumentsConfig{AgreementsDir: "/srv/agreements"},
		Scoring:   ScoringConfig{Provider: "openai", Model: "gpt-4o"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 5 {
		t.Errorf("read timeout overridden: %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Documents.AgreementsDir != "/srv/agreements" {
		t.Errorf("agreements_dir overridden: %q", cfg.Documents.AgreementsDir)
	}
	if cfg.Scoring.Model != "gpt-4o" {
		t.Errorf("scoring.model overridden: %q", cfg.Scoring.Model)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TRADEMATCH_TEST_KEY", "secret")

	in := []byte("api_key: ${TRADEMATCH_TEST_KEY}\nmodel: ${TRADEMATCH_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
