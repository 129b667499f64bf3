package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput              = "invalid input"
	ErrMsgUnknownItem               = "unknown item"
	ErrMsgToolLevel                 = "insufficient tool level"
	ErrMsgMachineToolsRequired      = "machine tools required"
	ErrMsgEyeglassesRequired        = "eyeglasses required"
	ErrMsgMultipleOverride          = "multiple overrides for item"
	ErrMsgNotCreatableWithOverrides = "not creatable with current overrides"
	ErrMsgInternal                  = "internal error"
	ErrMsgNonPositiveTargetFmt      = "%s must be positive (got %g)"
	ErrMsgUnknownUnitFmt            = "unknown output unit %q"
	ErrMsgEmptyItemID               = "item id cannot be empty"
	ErrMsgUnknownCreatorFmt         = "item %q has no creator %q"
	ErrMsgMissingProducerFmt        = "recipe %s references item %q which has no recipe"
	ErrMsgSolverFailedFmt           = "production network solve failed: %v"
	ErrMsgRootRecipeMissingFmt      = "no root recipe available for %q"
	ErrMsgBlockingItemNotFoundFmt   = "root %q uncreatable but no blocking item was found"
)

// Common domain errors
// Typed errors below unwrap to these, so callers can use errors.Is for the
// category and errors.As for the details.
var (
	ErrInvalidInput              = errors.New(ErrMsgInvalidInput)
	ErrUnknownItem               = errors.New(ErrMsgUnknownItem)
	ErrToolLevel                 = errors.New(ErrMsgToolLevel)
	ErrMachineToolsRequired      = errors.New(ErrMsgMachineToolsRequired)
	ErrEyeglassesRequired        = errors.New(ErrMsgEyeglassesRequired)
	ErrMultipleOverride          = errors.New(ErrMsgMultipleOverride)
	ErrNotCreatableWithOverrides = errors.New(ErrMsgNotCreatableWithOverrides)
	ErrInternal                  = errors.New(ErrMsgInternal)
)

// ValidationError is a malformed request. It is raised before any graph work.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMsgInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// UnknownItemError means the root item is absent from the supplied closure
type UnknownItemError struct {
	ItemID      string
	Suggestions []string
}

func (e *UnknownItemError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrMsgUnknownItem, e.ItemID)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownItemError) Unwrap() error { return ErrUnknownItem }

// ToolLevelError means the item needs a better tool than is available
type ToolLevelError struct {
	ItemID      string
	MinimumTool string
}

func (e *ToolLevelError) Error() string {
	return fmt.Sprintf("%s: %q requires at least %s tools", ErrMsgToolLevel, e.ItemID, e.MinimumTool)
}

func (e *ToolLevelError) Unwrap() error { return ErrToolLevel }

// MachineToolsRequiredError means only machine recipes exist for the item
type MachineToolsRequiredError struct {
	ItemID string
}

func (e *MachineToolsRequiredError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgMachineToolsRequired, e.ItemID)
}

func (e *MachineToolsRequiredError) Unwrap() error { return ErrMachineToolsRequired }

// EyeglassesRequiredError means only eyeglasses recipes exist for the item
type EyeglassesRequiredError struct {
	ItemID string
}

func (e *EyeglassesRequiredError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgEyeglassesRequired, e.ItemID)
}

func (e *EyeglassesRequiredError) Unwrap() error { return ErrEyeglassesRequired }

// MultipleOverrideError means the same item was overridden more than once
type MultipleOverrideError struct {
	ItemID string
}

func (e *MultipleOverrideError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgMultipleOverride, e.ItemID)
}

func (e *MultipleOverrideError) Unwrap() error { return ErrMultipleOverride }

// NotCreatableWithOverridesError means pruning removed every path to the root
type NotCreatableWithOverridesError struct {
	ItemID string
}

func (e *NotCreatableWithOverridesError) Error() string {
	return fmt.Sprintf("%q is %s", e.ItemID, ErrMsgNotCreatableWithOverrides)
}

func (e *NotCreatableWithOverridesError) Unwrap() error { return ErrNotCreatableWithOverrides }

// InternalError is a catalog inconsistency or solver failure. Its detail is
// for logs only.
type InternalError struct {
	Detail string
	Err    error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMsgInternal, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMsgInternal, e.Detail)
}

// Is matches ErrInternal while Unwrap exposes the cause
func (e *InternalError) Is(target error) bool { return target == ErrInternal }

func (e *InternalError) Unwrap() error { return e.Err }
