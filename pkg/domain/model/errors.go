package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrSubmissionMissing     = goerr.New("assignment is marked missing")
	ErrNoSubmissionTime      = goerr.New("no submission time")
	ErrUnparseableSubmission = goerr.New("submission time could not be parsed")
	ErrInvalidElapsed        = goerr.New("elapsed time is invalid")
	ErrNoAssignmentsRecorded = goerr.New("no assignments recorded")
	ErrRunNotFound           = goerr.New("run not found")
)
