package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/linkwatch/internal/domain"
)

// Version is reported on the status endpoint.
const Version = "1.0.0"

type Config struct {
	Addr           string        // API bind address, e.g., "127.0.0.1:8080"
	LogDir         string        // logs directory
	ResourcesFile  string        // YAML file with the monitored resource list
	WebhookURL     string        // alert destination; empty disables notifications
	WebhookService string        // explicit service override (discord/slack/zulip/generic)
	AccessToken    string        // bearer token for the manual-trigger endpoints
	CheckInterval  time.Duration // 0 disables the scheduler loop
	CheckTimeout   time.Duration // per-check wall clock limit
	MaxConcurrent  int           // concurrent checks per cycle
	RatePerMin     int           // API rate limit; 0 disables
	RateBurst      int
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	resourcesFile := os.Getenv("RESOURCES_FILE")
	if resourcesFile == "" {
		resourcesFile = "resources.yaml"
	}

	interval := 5 * time.Minute
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	timeout := 10 * time.Second
	if v := os.Getenv("CHECK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	maxConcurrent := 8
	if v := os.Getenv("MAX_CONCURRENT_CHECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxConcurrent = n
		}
	}

	rpm := 120
	if v := os.Getenv("API_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			rpm = n
		}
	}
	burst := 60
	if v := os.Getenv("API_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}

	return Config{
		Addr:           addr,
		LogDir:         logDir,
		ResourcesFile:  resourcesFile,
		WebhookURL:     os.Getenv("WEBHOOK_URL"),
		WebhookService: os.Getenv("WEBHOOK_SERVICE"),
		AccessToken:    os.Getenv("ACCESS_TOKEN"),
		CheckInterval:  interval,
		CheckTimeout:   timeout,
		MaxConcurrent:  maxConcurrent,
		RatePerMin:     rpm,
		RateBurst:      burst,
	}
}

type resourceFile struct {
	Resources []domain.Resource `yaml:"resources"`
}

// LoadResources reads the monitored resource list from a YAML file:
//
//	resources:
//	  - url: https://example.com/app.js
//	    digest: sha384-...
//
// Loaded once at startup; entries are read-only afterwards. Every digest
// must carry a supported algorithm prefix so obvious typos fail the boot
// instead of alerting forever.
func LoadResources(path string) ([]domain.Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resources file: %w", err)
	}

	var f resourceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse resources file: %w", err)
	}

	for i, r := range f.Resources {
		if r.URL == "" {
			return nil, fmt.Errorf("resource %d: empty url", i)
		}
		if !strings.HasPrefix(r.Digest, "sha256-") &&
			!strings.HasPrefix(r.Digest, "sha384-") &&
			!strings.HasPrefix(r.Digest, "sha512-") {
			return nil, fmt.Errorf("resource %d (%s): digest must start with sha256-, sha384- or sha512-", i, r.URL)
		}
	}
	return f.Resources, nil
}
