// Package quiz builds multiple-choice and true/false question batches from a
// sign catalog and keeps score while they are answered.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/signmaster/internal/catalog"
)

// DefaultSize is the number of questions in a quiz when none is requested.
const DefaultSize = 20

var (
	// ErrInsufficientCatalog is returned when the catalog cannot supply
	// enough distinct names to build well-formed questions.
	ErrInsufficientCatalog = errors.New("quiz: catalog too small")

	// ErrNoSubjects is returned when the subset to quiz on is empty.
	ErrNoSubjects = errors.New("quiz: no signs to ask about")
)

// Generator draws questions. Catalog is the full domain catalog used for
// distractors; when empty, the subset passed to each call is used instead.
// Rand may be nil, in which case the global source is used.
type Generator struct {
	Catalog []catalog.SignRecord
	Rand    *rand.Rand
}

// NewGenerator creates a generator over the full catalog.
func NewGenerator(all []catalog.SignRecord, rng *rand.Rand) *Generator {
	return &Generator{Catalog: all, Rand: rng}
}

func (g *Generator) intN(n int) int {
	if g.Rand != nil {
		return g.Rand.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Generator) shuffle(n int, swap func(i, j int)) {
	if g.Rand != nil {
		g.Rand.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

func (g *Generator) pool(subset []catalog.SignRecord) []catalog.SignRecord {
	if len(g.Catalog) > 0 {
		return g.Catalog
	}
	return subset
}

// subjects shuffles a copy of subset and keeps the first size records.
func (g *Generator) subjects(subset []catalog.SignRecord, size int) []catalog.SignRecord {
	if size <= 0 {
		size = DefaultSize
	}
	picked := slices.Clone(subset)
	g.shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	if len(picked) > size {
		picked = picked[:size]
	}
	return picked
}

func distinctNames(records []catalog.SignRecord) int {
	names := make(map[string]struct{}, len(records))
	for _, r := range records {
		names[r.LocalizedName] = struct{}{}
	}
	return len(names)
}

// GenerateChoice builds up to size multiple-choice questions from subset.
// Each subject appears once. Distractors come from the full catalog.
func (g *Generator) GenerateChoice(subset []catalog.SignRecord, size int) ([]Question, error) {
	if len(subset) == 0 {
		return nil, ErrNoSubjects
	}
	pool := g.pool(subset)
	if n := distinctNames(pool); n < OptionCount {
		return nil, fmt.Errorf("%w: %d distinct names, need %d", ErrInsufficientCatalog, n, OptionCount)
	}

	subjects := g.subjects(subset, size)
	questions := make([]Question, 0, len(subjects))
	for _, s := range subjects {
		q, err := g.choiceQuestion(s, pool)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (g *Generator) choiceQuestion(subject catalog.SignRecord, pool []catalog.SignRecord) (Question, error) {
	q := Question{Subject: subject, Correct: subject.LocalizedName}

	used := map[string]bool{subject.LocalizedName: true}
	options := []string{subject.LocalizedName}

	// Walk the pool in random order and keep the first names that are new.
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	g.shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, idx := range order {
		if len(options) == OptionCount {
			break
		}
		cand := pool[idx]
		if cand.ID == subject.ID || used[cand.LocalizedName] {
			continue
		}
		used[cand.LocalizedName] = true
		options = append(options, cand.LocalizedName)
	}
	if len(options) < OptionCount {
		return Question{}, fmt.Errorf("%w: no distractors for sign %d", ErrInsufficientCatalog, subject.ID)
	}

	g.shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	copy(q.Options[:], options)
	return q, nil
}

// GenerateTrueFalse builds up to size true/false questions from subset.
// Each question independently shows the subject's own name with
// probability one half, otherwise another sign's name.
func (g *Generator) GenerateTrueFalse(subset []catalog.SignRecord, size int) ([]TrueFalseQuestion, error) {
	if len(subset) == 0 {
		return nil, ErrNoSubjects
	}
	pool := g.pool(subset)
	if len(pool) < 2 || distinctNames(pool) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct names", ErrInsufficientCatalog)
	}

	subjects := g.subjects(subset, size)
	questions := make([]TrueFalseQuestion, 0, len(subjects))
	for _, s := range subjects {
		q := TrueFalseQuestion{Subject: s, DisplayedName: s.LocalizedName, Expected: true}
		if g.intN(2) == 0 {
			other, ok := g.otherName(s, pool)
			if !ok {
				return nil, fmt.Errorf("%w: no other name for sign %d", ErrInsufficientCatalog, s.ID)
			}
			q.DisplayedName = other
			q.Expected = false
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// otherName picks a uniformly random record whose name differs from the
// subject's.
func (g *Generator) otherName(subject catalog.SignRecord, pool []catalog.SignRecord) (string, bool) {
	var candidates []string
	for _, r := range pool {
		if r.ID != subject.ID && r.LocalizedName != subject.LocalizedName {
			candidates = append(candidates, r.LocalizedName)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[g.intN(len(candidates))], true
}
