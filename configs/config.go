package configs

import (
	"errors"
	"fmt"
)

var Values Config

type (
	// Config holds tool-level defaults. Everything here can be overridden
	// per invocation with command-line flags.
	Config struct {
		Init   Init   `mapstructure:"init"`
		Deploy Deploy `mapstructure:"deploy"`
	}

	Init struct {
		Template       string `mapstructure:"template"`
		PackageManager string `mapstructure:"package-manager"`
		SkipInstall    bool   `mapstructure:"skip-install"`
		SkipGit        bool   `mapstructure:"skip-git"`
		TemplatesDir   string `mapstructure:"templates-dir"`
	}

	Deploy struct {
		Network string `mapstructure:"network"`
	}
)

const (
	PackageManagerNpm  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPnpm = "pnpm"
)

// PackageManagers lists the supported package managers in prompt order.
var PackageManagers = []string{PackageManagerNpm, PackageManagerYarn, PackageManagerPnpm}

func ValidPackageManager(name string) bool {
	for _, pm := range PackageManagers {
		if pm == name {
			return true
		}
	}
	return false
}

func (c *Init) Validate() error {
	var errs []error

	if c.PackageManager != "" && !ValidPackageManager(c.PackageManager) {
		errs = append(errs, fmt.Errorf("init.package-manager must be one of npm, yarn, pnpm (got %q)", c.PackageManager))
	}

	if len(errs) > 0 {
		return fmt.Errorf("init configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}

func (c *Deploy) Validate() error {
	var errs []error

	if c.Network != "" && c.Network != "testnet" && c.Network != "mainnet" {
		errs = append(errs, errors.New("deploy.network must be either 'testnet' or 'mainnet'"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("deploy configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
