// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv is the environment layer of the config builder: it reads the
// process environment into cfg through caarlos0/env, following the `env` and
// `envPrefix` tags on [StructuredConfig] and its nested sections.
//
// A value that cannot be converted to its field's type surfaces as a wrapped
// error; variables without a matching tag are ignored.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
