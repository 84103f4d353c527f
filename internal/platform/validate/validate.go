// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

// Package validate provides a chainable Validator that collects field-level
// failures before returning a single [apperr.AppError].
//
// # Scope
//
// The topic endpoints reproduce a historical API contract with fixed
// validation messages, so their handlers validate inline. This package
// serves the newer surfaces (admin auth) where a composable validator is
// worth having.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/anavarrete/frameteca/internal/platform/apperr"
)

// Validator collects field-level validation failures via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	failures []string
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "must be a valid email address")
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("must be at least %d characters", min))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, "must be one of: "+strings.Join(allowed, ", "))
	return v
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Err returns a 400 [apperr.AppError] describing every failed rule, or nil
// if all rules passed. This is the only output method — call it at the end
// of the chain.
func (v *Validator) Err() error {
	if len(v.failures) == 0 {
		return nil
	}
	return apperr.Validation(strings.Join(v.failures, "; "))
}

func (v *Validator) add(field, message string) {
	v.failures = append(v.failures, field+" "+message)
}
