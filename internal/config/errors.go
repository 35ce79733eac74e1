// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by validation when no JWT signing secret
	// was provided by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned by validation when no database connection
	// string was provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrUnsupportedTokenAlgorithm is returned when the configured signing
	// algorithm identifier is not HS256.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token signing algorithm")

	// ErrInvalidBcryptCost is returned when the configured bcrypt work factor
	// is outside the range accepted by the bcrypt library.
	ErrInvalidBcryptCost = errors.New("bcrypt cost out of range")
)
