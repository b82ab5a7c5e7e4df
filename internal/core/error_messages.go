// # Error Codes Reference
//
// This file maps technical errors to user-friendly messages with codes, so
// the CLI can print something actionable as its final line.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Input not found: The input file does not exist
//	          Patterns: "no such file"
//	FILE002 - Invalid CSV: The input is not valid delimited text
//	          Patterns: "invalid csv"
//	FILE003 - Encoding error: The input contains invalid characters
//	          Patterns: "encoding error"
//	FILE004 - Permission denied: A file could not be opened or written
//	          Patterns: "permission denied"
//	FILE006 - Disk full: Output could not be written
//	          Patterns: "no space left"
//	FILE007 - Workbook error: The sheet or workbook could not be read
//	          Patterns: "not found in workbook", "zip: not a valid zip file"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Missing column: A column the schema needs is absent from the header
//	         Patterns: "missing required column"
//	VAL002 - Ragged row: A row has more or fewer cells than the header
//	         Patterns: "columns, expected"
//	VAL003 - Unknown schema: The requested schema is not registered
//	         Patterns: "unknown schema"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Run cancelled: The run was interrupted
//	         Patterns: "run cancelled", "context canceled"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches.
//
// Error patterns are matched case-insensitively using strings.Contains and
// the first matching pattern wins.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// File Errors (FILE001-FILE007)
	// =========================================================================
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "Input file not found",
			Action:  "Check the --input path or METAGEN_INPUT",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "Input is not valid CSV",
			Action:  "Check quoting and the delimiter setting",
			Code:    "FILE002",
		},
	},
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "Input contains invalid characters",
			Action:  "Save the file as UTF-8",
			Code:    "FILE003",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "A file could not be accessed",
			Action:  "Check permissions on the input file and output directory",
			Code:    "FILE004",
		},
	},
	{
		pattern: "no space left",
		msg: UserMessage{
			Message: "Output could not be written, disk is full",
			Action:  "Free disk space and run again",
			Code:    "FILE006",
		},
	},
	{
		pattern: "zip: not a valid zip file",
		msg: UserMessage{
			Message: "Workbook could not be read",
			Action:  "Check that the file is a valid .xlsx workbook",
			Code:    "FILE007",
		},
	},
	{
		pattern: "not found in workbook",
		msg: UserMessage{
			Message: "Sheet not found in workbook",
			Action:  "Check the --sheet name",
			Code:    "FILE007",
		},
	},

	// =========================================================================
	// Validation Errors (VAL001-VAL003)
	// =========================================================================
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "Required column is missing from the input",
			Action:  "Check the header row against the schema (metagen schemas)",
			Code:    "VAL001",
		},
	},
	{
		pattern: "columns, expected",
		msg: UserMessage{
			Message: "A row does not have one cell per header column",
			Action:  "Fix the row, quoting any cell that contains the delimiter",
			Code:    "VAL002",
		},
	},
	{
		pattern: "unknown schema",
		msg: UserMessage{
			Message: "Schema is not known",
			Action:  "Pick one of the schemas listed by metagen schemas",
			Code:    "VAL003",
		},
	},

	// =========================================================================
	// Run Errors (RUN001)
	// =========================================================================
	{
		pattern: "run cancelled",
		msg: UserMessage{
			Message: "Run was interrupted",
			Action:  "Files written so far are kept; run again to regenerate all",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Run was interrupted",
			Action:  "Files written so far are kept; run again to regenerate all",
			Code:    "RUN001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with --log-level debug for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether an error matches a known pattern rather
// than the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
