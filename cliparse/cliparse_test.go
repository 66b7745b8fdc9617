// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("LINK_SECRET", "test-secret")
	os.Setenv("ISSUER_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.DefaultOrg != "Instituto Wedja de Socionomia" {
		t.Errorf("unexpected default org: %s", cfg.DefaultOrg)
	}
	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("unexpected base URL: %s", cfg.BaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-link-secret", "s1", "-issuer-key", "k1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_RequiredSecrets(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:test.db"}); err == nil {
		t.Error("expected error when LINK_SECRET missing")
	}
	if _, err := ParseFlags([]string{"-d", "file:test.db", "-link-secret", "s1"}); err == nil {
		t.Error("expected error when ISSUER_KEY missing")
	}
}

func TestParseFlags_CSVSinkNeedsNoDatabase(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-sink", "csv", "-link-secret", "s1", "-issuer-key", "k1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SinkPath != "submissions.csv" {
		t.Errorf("expected default sink path, got %s", cfg.SinkPath)
	}
}

func TestParseFlags_BadSinkType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-sink", "kafka", "-link-secret", "s1", "-issuer-key", "k1"}); err == nil {
		t.Error("expected error for unknown sink type")
	}
}
