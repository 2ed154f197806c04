package question

// Question is a single multiple-choice question as produced by the extractor.
type Question struct {
	Text    string   `json:"q" yaml:"q"`
	Options []string `json:"opts" yaml:"opts"`
	Correct int      `json:"correct" yaml:"correct"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Source is one named, ordered list of questions.
type Source struct {
	Key       string
	Label     string
	Questions []Question
}

// Pool holds every source in declaration order. It is read-only after loading.
type Pool struct {
	Sources []Source
}

// Source returns the source with the given key.
func (p Pool) Source(key string) (Source, bool) {
	for _, source := range p.Sources {
		if source.Key == key {
			return source, true
		}
	}
	return Source{}, false
}

// Size returns the total number of questions across all sources.
func (p Pool) Size() int {
	total := 0
	for _, source := range p.Sources {
		total += len(source.Questions)
	}
	return total
}

// Keys returns source keys in pool order.
func (p Pool) Keys() []string {
	keys := make([]string, 0, len(p.Sources))
	for _, source := range p.Sources {
		keys = append(keys, source.Key)
	}
	return keys
}

// WithLabels returns a copy of the pool with display labels applied by key.
func (p Pool) WithLabels(labels map[string]string) Pool {
	out := Pool{Sources: make([]Source, len(p.Sources))}
	for i, source := range p.Sources {
		if label, ok := labels[source.Key]; ok && label != "" {
			source.Label = label
		}
		out.Sources[i] = source
	}
	return out
}
