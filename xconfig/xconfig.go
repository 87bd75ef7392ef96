// Package xconfig fills a config struct from default tags, Default() methods,
// JSON/YAML files and environment variables, in that order.
package xconfig

import (
	"fmt"
)

type Options struct {
	files     []string
	envPrefix string
	strict    bool
}

type Option func(*Options)

// WithFiles loads the given files in order. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		for _, name := range filenames {
			if name != "" {
				o.files = append(o.files, name)
			}
		}
	}
}

// WithEnv reads PREFIX_FIELD variables, nesting struct fields with underscores.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// WithStrict rejects unknown fields in config files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func Load(config interface{}, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTagsRecursive(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	if err := callDefaultMethodsRecursive(configElem); err != nil {
		return fmt.Errorf("failed to call default methods: %w", err)
	}

	if err := loadFromFiles(config, opts.files, opts.strict); err != nil {
		return fmt.Errorf("failed to load from files: %w", err)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configElem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}
