package types

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// RunID identifies one checking run
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// Validate checks that the run ID is set
func (id RunID) Validate() error {
	if id == "" {
		return goerr.New("run ID is empty")
	}
	return nil
}

// AccountID represents a Canvas user account identifier
type AccountID int64

// String returns the string representation
func (id AccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Validate checks that the account ID is positive
func (id AccountID) Validate() error {
	if id <= 0 {
		return goerr.New("account ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

// TutorName is the display name of a tutor as written in the roster
type TutorName string

// String returns the string representation
func (n TutorName) String() string {
	return string(n)
}
