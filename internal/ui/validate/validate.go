package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Rules describes the checks applied to a single input value. The
// zero value performs no checks and accepts everything.
type Rules struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// Custom is an arbitrary caller-supplied check. Return nil to
	// pass; a non-nil error contributes its message to the result.
	Custom func(value string) error
}

// Result is the outcome of validating one value.
type Result struct {
	Valid  bool
	Errors []string
}

// Messages reported for the built-in rules.
const (
	MsgRequired      = "This field is required"
	MsgPatternFailed = "Invalid format"
)

// Validate checks value against rules and returns every failing
// rule's message in a fixed order: required, min length, max length,
// pattern, custom. An empty value that is not required is valid
// without further checks; an empty required value reports only the
// required failure. Validate never panics and never returns a nil
// Errors slice with Valid false.
func Validate(value string, rules Rules) Result {
	if value == "" {
		if rules.Required {
			return Result{Valid: false, Errors: []string{MsgRequired}}
		}
		return Result{Valid: true}
	}

	var errs []string
	// Length bounds count characters, not bytes.
	length := utf8.RuneCountInString(value)
	if rules.MinLength > 0 && length < rules.MinLength {
		errs = append(errs, fmt.Sprintf("Must be at least %d characters", rules.MinLength))
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		errs = append(errs, fmt.Sprintf("Must be at most %d characters", rules.MaxLength))
	}
	if rules.Pattern != nil && !rules.Pattern.MatchString(value) {
		errs = append(errs, MsgPatternFailed)
	}
	if rules.Custom != nil {
		if err := rules.Custom(value); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
