// Package apperr holds the error taxonomy shared by services and controllers.
// NotFound maps to 404, Validation and BusinessRule to 400; anything else is
// treated as an unexpected failure.
package apperr

import "errors"

type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type BusinessRuleError struct{ Msg string }

func (e *BusinessRuleError) Error() string { return e.Msg }

func NotFound(msg string) error     { return &NotFoundError{Msg: msg} }
func Validation(msg string) error   { return &ValidationError{Msg: msg} }
func BusinessRule(msg string) error { return &BusinessRuleError{Msg: msg} }

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsBusinessRule(err error) bool {
	var e *BusinessRuleError
	return errors.As(err, &e)
}
