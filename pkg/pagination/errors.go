package pagination

import (
	"errors"
	"fmt"
)

// Configuration and lookup errors.
var (
	// ErrNoLocator is returned by New when Config.Locator is nil.
	ErrNoLocator = errors.New("locator is required")

	// ErrNoTemplate is returned by New when Config.Template is nil.
	ErrNoTemplate = errors.New("template is required")

	// ErrNoDocument is returned by New when Config.Document is nil.
	ErrNoDocument = errors.New("document is required")

	// ErrNoPage is returned by PageFromElement when the element carries no page number.
	ErrNoPage = errors.New("element has no page number")
)

// Render stages reported in RenderError.
const (
	StageTemplate = "template"
	StageParse    = "parse"
)

// RenderError reports a failure while producing pagination markup or its tree.
type RenderError struct {
	Stage string
	Page  int
	Err   error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("pagination %s failed (page %d): %v", e.Stage, e.Page, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RenderError) Unwrap() error {
	return e.Err
}
