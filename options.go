package textkit

import "log/slog"

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	presets []preset
}

// preset is one deferred Set call. Presets keep their order so a
// category cover can be set broadly and then narrowed.
type preset struct {
	name  string
	value any
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOption presets one named option, exactly as a Set call after New
// would. Presets apply in the order given.
func WithOption(name string, value any) Option {
	return func(c *config) {
		c.presets = append(c.presets, preset{name: name, value: value})
	}
}
