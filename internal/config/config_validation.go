// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress   = ":8080"
	defaultTokenIssuer   = "go-mark-keeper"
	defaultTokenAlg      = "HS256"
	defaultTokenLifetime = 120 * time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for optional fields.
//
// Rules:
//   - Auth.TokenSignKey is required.
//   - Storage.DB.DSN is required.
//   - Auth.TokenAlgorithm defaults to HS256 and must be HS256.
//   - Auth.TokenDuration falls back to TokenExpireMinutes, then to the
//     default lifetime.
//   - Auth.BcryptCost must be zero (library default) or within [4, 31].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	if cfg.Auth.TokenAlgorithm == "" {
		cfg.Auth.TokenAlgorithm = defaultTokenAlg
	}
	if cfg.Auth.TokenAlgorithm != defaultTokenAlg {
		errs = append(errs, ErrUnsupportedTokenAlgorithm)
	}

	if cfg.Auth.TokenDuration == 0 && cfg.Auth.TokenExpireMinutes > 0 {
		cfg.Auth.TokenDuration = time.Duration(cfg.Auth.TokenExpireMinutes) * time.Minute
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenLifetime
	}

	if cfg.Auth.BcryptCost != 0 && (cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31) {
		errs = append(errs, ErrInvalidBcryptCost)
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	return errors.Join(errs...)
}
