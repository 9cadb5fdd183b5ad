// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package request provides the uniform request-execution contract every
// feature of the client is built on: a tagged [Outcome] with exactly one of
// loading/success/failure, and [Execute], which guarantees the loading flag
// is released on every exit path.
package request

type outcomeState int

const (
	statePending outcomeState = iota
	stateSuccess
	stateFailure
)

// Outcome is the tagged result of a single request: pending, success with a
// value, or failure with a normalized error. It is transient — it exists
// only for the duration of one request's lifecycle and is never persisted.
type Outcome[T any] struct {
	state outcomeState
	data  T
	err   *Error
}

// Pending returns an Outcome still in flight.
func Pending[T any]() Outcome[T] {
	return Outcome[T]{state: statePending}
}

// Success returns a completed Outcome carrying data.
func Success[T any](data T) Outcome[T] {
	return Outcome[T]{state: stateSuccess, data: data}
}

// Failure returns a completed Outcome carrying a normalized error.
func Failure[T any](err *Error) Outcome[T] {
	return Outcome[T]{state: stateFailure, err: err}
}

// Loading reports whether the request is still in flight.
func (o Outcome[T]) Loading() bool {
	return o.state == statePending
}

// Ok returns the success value and whether the Outcome is a success.
func (o Outcome[T]) Ok() (T, bool) {
	return o.data, o.state == stateSuccess
}

// Err returns the normalized error, or nil unless the Outcome is a failure.
func (o Outcome[T]) Err() *Error {
	if o.state != stateFailure {
		return nil
	}
	return o.err
}
