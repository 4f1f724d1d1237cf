package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the configuration against the requirements of the
// current environment. Development and test run with permissive defaults;
// production refuses to start without real credentials.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBName == "" {
		errs = append(errs, "database host and name are required")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errs = append(errs, "db_password secret is required in production")
		}
		if cfg.JWTSecret == "" {
			errs = append(errs, "jwt_secret secret is required in production")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
