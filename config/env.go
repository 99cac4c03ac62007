// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"

	"github.com/z5labs/minfold/config/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config from the
// environment variables available to the current process whose
// names start with prefix followed by an underscore.
//
// The prefix is stripped and the remaining name is split on
// underscores into nested keys, e.g. with prefix "MINFOLD" the
// variable MINFOLD_LOGGING_LEVEL sets logging.level.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	prefix := strings.ToUpper(src.prefix) + "_"
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		name, ok := strings.CutPrefix(strings.ToUpper(k), prefix)
		if !ok {
			continue
		}

		chain := key.Split(strings.ToLower(name), "_")
		if len(chain) == 0 {
			continue
		}

		err := store.Set(chain, v)
		if err != nil {
			return err
		}
	}
	return nil
}
