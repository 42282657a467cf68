// SPDX-License-Identifier: MIT
// Package: threshold
//
// errors.go — sentinel errors for the threshold package.
//
// Error policy (explicit and strict, per builder/errors.go):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Context is attached with github.com/pkg/errors.Wrapf at the call site.
package threshold

import "errors"

// ErrUnknownFamily is returned by Run when Config.Family names a code
// family this package does not know how to construct.
var ErrUnknownFamily = errors.New("threshold: unknown code family")

// ErrNoDistances is returned by Run when Config.Distances is empty.
var ErrNoDistances = errors.New("threshold: no distances configured")

// ErrNoErrorRates is returned by Run when Config.ErrorRates is empty.
var ErrNoErrorRates = errors.New("threshold: no error rates configured")

// ErrTooFewTrials is returned by Run when Config.TrialsPerPoint is <= 0.
var ErrTooFewTrials = errors.New("threshold: trials per point must be positive")
