// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoEndpoints indicates that the app has neither SSL nor SNI endpoints.
	ErrNoEndpoints = errors.New("endpoint: no endpoints")

	// ErrConflictingCriteria indicates that both --name and --endpoint were given.
	ErrConflictingCriteria = errors.New("endpoint: conflicting criteria")

	// ErrNotFound indicates that no endpoint matched the given criteria.
	ErrNotFound = errors.New("endpoint: not found")

	// ErrAmbiguousName indicates that more than one endpoint carries the requested name.
	ErrAmbiguousName = errors.New("endpoint: ambiguous name")

	// ErrMultipleEndpoints indicates that no criteria were given but the app
	// has more than one endpoint.
	ErrMultipleEndpoints = errors.New("endpoint: multiple endpoints")
)

// Error is a selection failure. Its message is meant for the user as is;
// Kind is one of the Err* sentinels and is reachable through errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Criteria carries the user's disambiguation flags.
type Criteria struct {
	// Domain is the --endpoint flag: a hostname of the endpoint.
	Domain string
	// Name is the --name flag: the endpoint identifier.
	Name string
}

// Validate rejects criteria with both fields set. It needs no endpoint data,
// so callers run it before fetching anything.
func (c Criteria) Validate() error {
	if c.Domain != "" && c.Name != "" {
		return &Error{Kind: ErrConflictingCriteria, Msg: "Specified both --name and --endpoint, please use just one"}
	}
	return nil
}

// Select picks exactly one endpoint of app from set.
//
// The checks run in this order: conflicting criteria, empty set, --endpoint,
// --name, and finally the implicit single-endpoint case. Domain and name
// comparisons ignore case. When several endpoints share a domain the first
// one in set order is returned; several endpoints sharing a name is an error.
func Select(app string, set Set, c Criteria) (Endpoint, error) {
	if err := c.Validate(); err != nil {
		return Endpoint{}, err
	}

	if set.Len() == 0 {
		return Endpoint{}, &Error{Kind: ErrNoEndpoints, Msg: fmt.Sprintf("%s has no SSL endpoints", app)}
	}

	switch {
	case c.Domain != "":
		for _, e := range set.endpoints {
			if hasDomain(e, c.Domain) {
				return e, nil
			}
		}
		return Endpoint{}, notFound()

	case c.Name != "":
		var matches []Endpoint
		for _, e := range set.endpoints {
			if strings.EqualFold(e.Name, c.Name) {
				matches = append(matches, e)
			}
		}
		switch len(matches) {
		case 0:
			return Endpoint{}, notFound()
		case 1:
			return matches[0], nil
		default:
			return Endpoint{}, &Error{
				Kind: ErrAmbiguousName,
				Msg:  fmt.Sprintf("More than one endpoint matches %s, please file a support ticket", c.Name),
			}
		}
	}

	if set.Len() > 1 {
		return Endpoint{}, &Error{Kind: ErrMultipleEndpoints, Msg: "Must pass --name when more than one endpoint"}
	}

	return set.endpoints[0], nil
}

func hasDomain(e Endpoint, domain string) bool {
	for _, d := range e.Domains {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}

func notFound() error {
	return &Error{Kind: ErrNotFound, Msg: "Record not found."}
}
