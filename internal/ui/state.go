package ui

import "github.com/ngmaloney/weather-terminal/internal/models"

// ViewState is exactly one of Idle, Loading, Success or Failed.
// Every transition replaces the whole value.
type ViewState interface {
	viewState()
}

// Idle is the initial state, before any lookup
type Idle struct{}

// Loading means the lookup identified by Token is outstanding
type Loading struct {
	Query string
	Token uint64
}

// Success holds the result of the last completed lookup
type Success struct {
	Report models.Report
}

// Failed holds the user-facing message of the last failed lookup
type Failed struct {
	Message string
}

func (Idle) viewState()    {}
func (Loading) viewState() {}
func (Success) viewState() {}
func (Failed) viewState()  {}
