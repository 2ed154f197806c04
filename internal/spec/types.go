package spec

type Config struct {
	Version int            `yaml:"version"`
	Title   string         `yaml:"title"`
	Sources []SourceConfig `yaml:"sources"`
	Quiz    QuizConfig     `yaml:"quiz"`
	Output  OutputConfig   `yaml:"output"`
}

type SourceConfig struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Table  string `yaml:"table"`
}

type QuizConfig struct {
	PrimarySource string  `yaml:"primary_source"`
	FixedCount    int     `yaml:"fixed_count"`
	RandomCount   int     `yaml:"random_count"`
	TimerSeconds  int     `yaml:"timer_seconds"`
	PassRatio     float64 `yaml:"pass_ratio"`
}

type OutputConfig struct {
	HTML string `yaml:"html"`
	Pool string `yaml:"pool"`
}

// SourceKeys returns the configured source keys in declaration order.
func (c Config) SourceKeys() []string {
	keys := make([]string, 0, len(c.Sources))
	for _, source := range c.Sources {
		keys = append(keys, source.Key)
	}
	return keys
}
