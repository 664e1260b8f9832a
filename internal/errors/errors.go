package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in season"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a rejected write naming the offending rule
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrLeagueNotFound       = &NotFoundError{Entity: "league"}
	ErrVenueNotFound        = &NotFoundError{Entity: "venue"}
	ErrSeasonNotFound       = &NotFoundError{Entity: "season"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound       = &NotFoundError{Entity: "player"}
	ErrSeasonTeamNotFound   = &NotFoundError{Entity: "season roster entry"}
	ErrMatchDayNotFound     = &NotFoundError{Entity: "match day"}
	ErrMatchNotFound        = &NotFoundError{Entity: "match"}
	ErrSegmentScoreNotFound = &NotFoundError{Entity: "segment score"}
)

// Already Exists Errors
var (
	ErrSeasonExists     = &AlreadyExistsError{Entity: "season", Context: "for this league and year"}
	ErrSeasonTeamExists = &AlreadyExistsError{Entity: "team", Context: "in this season"}
	ErrMatchExists      = &AlreadyExistsError{Entity: "match", Context: "for these teams on this match day"}
	ErrStandingsExist   = &AlreadyExistsError{Entity: "standings", Context: "for this match day"}
)

// Business Logic Errors
var (
	ErrMatchAlreadyStarted   = errors.New("match has already started")
	ErrMatchFinished         = errors.New("match is finished and can no longer change")
	ErrMatchDayIncomplete    = errors.New("match day still has unfinished matches")
	ErrPlayerAlreadyInRoster = errors.New("player already belongs to a roster in this season")
	ErrSeasonInactive        = errors.New("season is not active")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
