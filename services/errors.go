package services

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is returned when required request fields are absent.
type ValidationError struct {
	Msg     string
	Missing []string
}

func (e ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (missing: %s)", e.Msg, strings.Join(e.Missing, ", "))
}

// UpstreamError wraps a failed call to the generation provider.
// Msg is safe to show to callers; Err is for logs only.
type UpstreamError struct {
	Msg string
	Err error
}

func (e UpstreamError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

// ParseError is returned when a completion is not the JSON shape we asked for.
type ParseError struct {
	Msg string
	Err error
}

func (e ParseError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

var (
	errEmptyCompletion = UpstreamError{Msg: "AI response was empty"}
)

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

func IsParse(err error) bool {
	var target ParseError
	return errors.As(err, &target)
}

// PublicMessage returns the caller-safe text for err, or fallback when err
// carries none.
func PublicMessage(err error, fallback string) string {
	var v ValidationError
	if errors.As(err, &v) && v.Msg != "" {
		return v.Msg
	}
	var u UpstreamError
	if errors.As(err, &u) && u.Msg != "" {
		return u.Msg
	}
	var p ParseError
	if errors.As(err, &p) && p.Msg != "" {
		return p.Msg
	}
	return fallback
}
