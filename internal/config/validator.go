package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	as3errors "github.com/danlite/as3pkg/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setSmartDefaults(cfg)

	if err := v.validateSource(&cfg.Source); err != nil {
		return err
	}

	for _, lib := range cfg.Libraries {
		if !filepath.IsAbs(lib) {
			return as3errors.NewConfigError("libraries", lib, errors.New("external library roots must be absolute paths"))
		}
	}

	if err := v.validateSuggest(&cfg.Suggest); err != nil {
		return as3errors.NewConfigError("suggest", "", err)
	}

	return nil
}

// validateSource checks source roots and extensions
func (v *Validator) validateSource(source *Source) error {
	for _, root := range source.Roots {
		if root == "" {
			return as3errors.NewConfigError("source.roots", root, errors.New("source root names cannot be empty"))
		}
		if strings.ContainsAny(root, `/\`) {
			return as3errors.NewConfigError("source.roots", root, errors.New("source roots are directory names, not paths"))
		}
	}

	for _, ext := range source.Extensions {
		if ext == "" || strings.ContainsAny(ext, `./\`) {
			return as3errors.NewConfigError("source.extensions", ext, errors.New("extensions must be bare names such as \"as\""))
		}
	}

	return nil
}

// validateSuggest validates suggestion settings
func (v *Validator) validateSuggest(s *Suggest) error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("Threshold must be between 0 and 1, got %v", s.Threshold)
	}
	if s.Max < 0 {
		return fmt.Errorf("Max cannot be negative, got %d", s.Max)
	}
	return nil
}

// setSmartDefaults fills unset options and normalizes lenient input
func (v *Validator) setSmartDefaults(cfg *Config) {
	if len(cfg.Source.Roots) == 0 {
		cfg.Source.Roots = DefaultSourceRoots()
	}

	if len(cfg.Source.Extensions) == 0 {
		cfg.Source.Extensions = DefaultExtensions()
	}
	for i, ext := range cfg.Source.Extensions {
		// ".as" is accepted as a spelling of "as"
		cfg.Source.Extensions[i] = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	}

	if cfg.Project.Root != "" && !filepath.IsAbs(cfg.Project.Root) {
		if abs, err := filepath.Abs(cfg.Project.Root); err == nil {
			cfg.Project.Root = abs
		}
	}

	if cfg.Docs.TOC == "" {
		cfg.Docs.TOC = DefaultTOCPath()
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
