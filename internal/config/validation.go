// Package config provides configuration parsing and validation for go-proppanel.
// This file implements comprehensive validation for configuration values.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/style"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues (e.g., unusually large windows).
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Merge combines another ValidationResult into this one.
func (vr *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	vr.Errors = append(vr.Errors, other.Errors...)
	vr.Warnings = append(vr.Warnings, other.Warnings...)
}

// Validator provides comprehensive configuration validation.
type Validator struct {
	// strictMode turns warnings into errors.
	strictMode bool
}

// NewValidator creates a new Validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode enables strict validation where warnings are errors.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strictMode = strict
	return v
}

// Validate performs comprehensive validation of a Config.
func (v *Validator) Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	v.validateWindow(&cfg.Window, result)
	v.validateGradients(cfg, result)
	v.validatePanel(cfg, result)
	v.validateStyle(cfg, result)

	if v.strictMode {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = nil
	}
	return result
}

// validateWindow validates WindowConfig settings.
func (v *Validator) validateWindow(wc *WindowConfig, result *ValidationResult) {
	if wc.Width <= 0 {
		result.AddError("window.width", fmt.Sprintf("must be positive, got %d", wc.Width))
	}
	if wc.Height <= 0 {
		result.AddError("window.height", fmt.Sprintf("must be positive, got %d", wc.Height))
	}

	const maxDimension = 10000
	if wc.Width > maxDimension {
		result.AddWarning("window.width", fmt.Sprintf("unusually large value %d", wc.Width))
	}
	if wc.Height > maxDimension {
		result.AddWarning("window.height", fmt.Sprintf("unusually large value %d", wc.Height))
	}

	for i, hint := range wc.Hints {
		if hint < WindowHintUndecorated || hint > WindowHintSkipPager {
			result.AddError("window.hints",
				fmt.Sprintf("unknown hint at index %d: %d", i, hint))
		}
	}
}

func (v *Validator) validateGradients(cfg *Config, result *ValidationResult) {
	names := make([]string, 0, len(cfg.Gradients))
	for name := range cfg.Gradients {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := cfg.Gradient(name); err != nil {
			result.AddError("gradients."+name, err.Error())
		}
	}
}

func (v *Validator) validatePanel(cfg *Config, result *ValidationResult) {
	if cfg.Panel.LabelWidth < 0 {
		result.AddError("panel.label_width",
			fmt.Sprintf("must be non-negative, got %v", cfg.Panel.LabelWidth))
	}
	if cfg.Window.Width > 0 && cfg.Panel.LabelWidth >= float64(cfg.Window.Width) {
		result.AddWarning("panel.label_width", "leaves no room for attribute widgets")
	}

	for si, sec := range cfg.Panel.Sections {
		if sec.Title == "" {
			result.AddWarning(fmt.Sprintf("panel.sections[%d].title", si), "is empty")
		}
		for ai, attr := range sec.Attributes {
			v.validateAttribute(cfg, fmt.Sprintf("panel.sections[%d].attributes[%d]", si, ai), attr, result)
		}
	}
}

func (v *Validator) validateAttribute(cfg *Config, field string, attr AttributeConfig, result *ValidationResult) {
	if _, err := ParseAttributeKind(string(attr.Kind)); err != nil {
		result.AddError(field+".kind", err.Error())
		return
	}
	if attr.Label == "" {
		result.AddError(field+".label", "is empty")
	}

	switch attr.Kind {
	case KindSlider:
		if !(attr.Max > attr.Min) {
			result.AddError(field, fmt.Sprintf("invalid range [%v, %v]", attr.Min, attr.Max))
		} else if attr.Default < attr.Min || attr.Default > attr.Max {
			result.AddError(field+".default",
				fmt.Sprintf("%v outside [%v, %v]", attr.Default, attr.Min, attr.Max))
		}
		if attr.Gradient != "" {
			if _, err := cfg.Gradient(attr.Gradient); err != nil {
				result.AddError(field+".gradient", err.Error())
			}
		}
	case KindCombo, KindRadio:
		if len(attr.Options) == 0 {
			result.AddError(field+".options", "must not be empty")
		} else if attr.Kind == KindRadio && (attr.Selected < 0 || attr.Selected >= len(attr.Options)) {
			result.AddError(field+".selected",
				fmt.Sprintf("index %d outside %d options", attr.Selected, len(attr.Options)))
		}
	case KindColor, KindVector:
		for i, c := range attr.Components {
			if c < 0 || c > 1 {
				result.AddError(fmt.Sprintf("%s.components[%d]", field, i),
					fmt.Sprintf("%v outside [0, 1]", c))
			}
		}
	}

	for i, h := range attr.Handles {
		if _, err := cfg.Gradient(h); err != nil {
			result.AddError(fmt.Sprintf("%s.handles[%d]", field, i), err.Error())
		}
	}
}

func (v *Validator) validateStyle(cfg *Config, result *ValidationResult) {
	selectors := make([]string, 0, len(cfg.Style))
	for sel := range cfg.Style {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, sel := range selectors {
		if _, err := style.ParseSelector(sel); err != nil {
			result.AddError("style."+sel, err.Error())
			continue
		}
		for key, raw := range cfg.Style[sel] {
			if _, err := style.ParseValue(key, raw); err != nil {
				result.AddError("style."+sel+"."+key, err.Error())
			}
		}
	}
}

// ValidateConfig is a convenience function to validate a Config with default settings.
// Returns nil if the config is valid, or an error describing validation failures.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	validator := NewValidator()
	result := validator.Validate(cfg)
	return result.Error()
}

// ValidateConfigStrict validates a Config with strict mode enabled.
// Warnings are treated as errors.
func ValidateConfigStrict(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	validator := NewValidator().WithStrictMode(true)
	result := validator.Validate(cfg)
	return result.Error()
}
