package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"quizgen/internal/question"
)

// Build constructs a new session for mode from the pool. It never mutates the
// pool; every call makes an independent random draw.
func Build(mode Mode, pool question.Pool, settings Settings, rng *rand.Rand, now time.Time) (*Session, error) {
	if rng == nil {
		return nil, fmt.Errorf("quiz: random source is nil")
	}
	var picked []Item
	switch mode {
	case ModeFixed:
		picked = fixedItems(pool, settings)
	case ModeRandom:
		picked = randomItems(pool, settings, rng)
	default:
		return nil, fmt.Errorf("quiz: unknown mode %q", mode)
	}

	items := make([]Item, len(picked))
	for i, item := range picked {
		items[i] = shuffleOptions(item, rng)
	}
	answers := make([]int, len(items))
	for i := range answers {
		answers[i] = NoAnswer
	}
	return &Session{
		ID:               uuid.NewString(),
		Mode:             mode,
		Items:            items,
		Answers:          answers,
		Current:          0,
		SecondsRemaining: settings.TimerSeconds,
		StartedAt:        now,
		Requested:        settings.Requested(mode),
	}, nil
}

// fixedItems takes the first FixedCount questions of the primary source.
func fixedItems(pool question.Pool, settings Settings) []Item {
	source, ok := pool.Source(settings.PrimarySource)
	if !ok {
		return nil
	}
	count := min(max(settings.FixedCount, 0), len(source.Questions))
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, itemFor(source.Key, i, source.Questions[i]))
	}
	return items
}

// randomItems draws RandomCount questions uniformly from every source combined.
func randomItems(pool question.Pool, settings Settings, rng *rand.Rand) []Item {
	combined := make([]Item, 0, pool.Size())
	for _, source := range pool.Sources {
		for i, q := range source.Questions {
			combined = append(combined, itemFor(source.Key, i, q))
		}
	}
	order := rng.Perm(len(combined))
	count := min(max(settings.RandomCount, 0), len(combined))
	items := make([]Item, 0, count)
	for _, index := range order[:count] {
		items = append(items, combined[index])
	}
	return items
}

func itemFor(sourceKey string, index int, q question.Question) Item {
	return Item{
		Text:        q.Text,
		Options:     q.Options,
		Correct:     q.Correct,
		Source:      sourceKey,
		SourceIndex: index,
	}
}

// shuffleOptions permutes an item's options and remaps the correct index.
func shuffleOptions(item Item, rng *rand.Rand) Item {
	order := rng.Perm(len(item.Options))
	options := make([]string, len(item.Options))
	correct := NoAnswer
	for position, original := range order {
		options[position] = item.Options[original]
		if original == item.Correct {
			correct = position
		}
	}
	item.Options = options
	item.Correct = correct
	return item
}
