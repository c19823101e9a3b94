package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "invalid", "unknown_action", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys maps keys that should not be rebound to their action
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}
	for _, context := range sortedContexts(registry) {
		for _, b := range registry.ListBindings(context) {
			v.checkBinding(context, b.Key, b.Action, result)
		}
	}
	v.checkShadowing(registry, result)
	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	for _, context := range Contexts {
		section := *cfg.sections()[context]
		keys := make([]string, 0, len(section))
		for key := range section {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			v.checkBinding(context, key, Action(section[key]), result)
		}
	}

	return result
}

// checkBinding reports invalid keys, unknown actions and reserved key rebinding
func (v *Validator) checkBinding(context Context, key string, action Action, result *ValidationResult) {
	if err := ValidateKey(key); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Context: context,
			Key:     key,
			Message: err.Error(),
		})
		return
	}

	if err := ValidateAction(string(action)); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "unknown_action",
			Context: context,
			Key:     key,
			Message: err.Error(),
		})
		return
	}

	if reserved, ok := v.reservedKeys[key]; ok && action != reserved {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:    "warning",
			Context: context,
			Key:     key,
			Message: fmt.Sprintf("reserved key rebound to %s (may cause issues)", action),
		})
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for _, context := range sortedContexts(registry) {
		if context == ContextGlobal {
			continue
		}

		for _, b := range registry.ListBindings(context) {
			if globalAction, hasGlobal := globalBindings[b.Key]; hasGlobal && b.Action != globalAction {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, b.Action),
				})
			}
		}
	}
}

func sortedContexts(registry *Registry) []Context {
	contexts := make([]Context, 0, len(registry.bindings))
	for context := range registry.bindings {
		contexts = append(contexts, context)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks that an action string names a known action
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !KnownActions[Action(actionStr)] {
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}
