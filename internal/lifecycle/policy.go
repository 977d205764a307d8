package lifecycle

import (
	"fmt"
	"strings"
)

// ValidationError reports an invalid input field. It is surfaced to the user
// before any mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidationPolicy decides whether a create or edit form submission is
// acceptable. The two entry points genuinely enforce different rules; they
// are kept as two named policies instead of being unified.
type ValidationPolicy interface {
	Name() string
	Validate(in CreateInput) error
}

// PolicyTitleOnly is the Add screen rule: a task needs a non-blank title,
// the description may be empty.
var PolicyTitleOnly ValidationPolicy = titleOnlyPolicy{}

// PolicyTitleAndText is the list screen's inline edit form rule: both title
// and description must be non-blank.
var PolicyTitleAndText ValidationPolicy = titleAndTextPolicy{}

type titleOnlyPolicy struct{}

func (titleOnlyPolicy) Name() string { return "title_only" }

func (titleOnlyPolicy) Validate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "please enter a task title"}
	}
	return nil
}

type titleAndTextPolicy struct{}

func (titleAndTextPolicy) Name() string { return "title_and_text" }

func (titleAndTextPolicy) Validate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Text) == "" {
		return &ValidationError{Field: "title/description", Reason: "please enter both title and description"}
	}
	return nil
}
