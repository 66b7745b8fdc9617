package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/danielhkuo/likert-collect/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string // sqlite or postgres
	SinkType     string // db or csv
	SinkPath     string // csv sink file path
	LinkSecret   string
	IssuerKey    string
	DefaultOrg   string
	BaseURL      string
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("likert-collect", flag.ContinueOnError)

	// Network and sink config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SinkType, "sink", "", "Sink type (db or csv)")
	fs.StringVar(&cfg.SinkPath, "sink-path", "", "CSV sink file path")
	fs.StringVar(&cfg.DefaultOrg, "default-org", "", "Organization identity for unscoped access")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL used in issued links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.LinkSecret, "link-secret", "", "Capability link HMAC secret (prefer env)")
	fs.StringVar(&cfg.IssuerKey, "issuer-key", "", "Key required to issue links (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3411 // default
		}
	}

	if cfg.SinkType == "" {
		cfg.SinkType = os.Getenv("SINK")
		if cfg.SinkType == "" {
			cfg.SinkType = models.SinkDB
		}
	}
	if cfg.SinkType != models.SinkDB && cfg.SinkType != models.SinkCSV {
		return Config{}, errors.New("sink type must be db or csv")
	}

	if cfg.SinkType == models.SinkCSV {
		if cfg.SinkPath == "" {
			cfg.SinkPath = os.Getenv("SINK_PATH")
		}
		if cfg.SinkPath == "" {
			cfg.SinkPath = "submissions.csv"
		}
	} else {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
			if cfg.DatabaseType == "" {
				cfg.DatabaseType = "sqlite"
			}
		}
		if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
			return Config{}, errors.New("database type must be sqlite or postgres")
		}
	}

	// Secrets - MUST be provided
	if cfg.LinkSecret == "" {
		cfg.LinkSecret = os.Getenv("LINK_SECRET")
	}
	if cfg.LinkSecret == "" {
		return Config{}, errors.New("LINK_SECRET required")
	}

	if cfg.IssuerKey == "" {
		cfg.IssuerKey = os.Getenv("ISSUER_KEY")
	}
	if cfg.IssuerKey == "" {
		return Config{}, errors.New("ISSUER_KEY required")
	}

	if cfg.DefaultOrg == "" {
		cfg.DefaultOrg = os.Getenv("DEFAULT_ORG")
	}
	if cfg.DefaultOrg == "" {
		cfg.DefaultOrg = "Instituto Wedja de Socionomia"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	return cfg, nil
}
