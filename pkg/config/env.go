package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

// Environment variable names recognized for credential overrides. Secrets
// belong in the environment or a .env file, not in the config file.
const (
	EnvEndpoint     = "EOFETCH_ENDPOINT"
	EnvAccessKey    = "EOFETCH_ACCESS_KEY"
	EnvSecretKey    = "EOFETCH_SECRET_KEY"
	EnvCatalogToken = "EOFETCH_CATALOG_TOKEN"

	// S3-convention fallbacks.
	EnvAWSAccessKey = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretKey = "AWS_SECRET_ACCESS_KEY"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped. Variables already present in the
// environment are not overridden.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides credential fields from the process environment. The
// EOFETCH_* variables take precedence over the AWS_* fallbacks; both take
// precedence over the config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Store.Endpoint = v
	}
	if v := os.Getenv(EnvAWSAccessKey); v != "" {
		c.Store.AccessKey = v
	}
	if v := os.Getenv(EnvAWSSecretKey); v != "" {
		c.Store.SecretKey = v
	}
	if v := os.Getenv(EnvAccessKey); v != "" {
		c.Store.AccessKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		c.Store.SecretKey = v
	}
	if v := os.Getenv(EnvCatalogToken); v != "" {
		c.Catalog.Token = v
	}
}
