package progress

// Level is a learner's mastery badge for a domain, ordered lowest first.
type Level int

const (
	LevelNovice Level = iota
	LevelBeginner
	LevelIntermediate
	LevelAdvanced
	LevelExpert
	LevelMaster
)

// ExamUnlockThreshold is the number of known signs needed to open the
// master exam.
const ExamUnlockThreshold = 100

// levelBands maps an exclusive upper bound on the completion percentage to
// its level. Anything at or beyond the last bound is LevelMaster.
var levelBands = []struct {
	below float64
	level Level
}{
	{25, LevelBeginner},
	{50, LevelIntermediate},
	{75, LevelAdvanced},
	{100, LevelExpert},
}

var levelNames = map[Level]string{
	LevelNovice:       "Novice",
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
	LevelMaster:       "Master",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Percent returns known as a percentage of total, capped at 100.
func Percent(known, total int) float64 {
	if total <= 0 || known <= 0 {
		return 0
	}
	p := float64(known) / float64(total) * 100
	if p > 100 {
		return 100
	}
	return p
}

// MasteryLevel maps a known count against the catalog size to a Level.
func MasteryLevel(known, total int) Level {
	p := Percent(known, total)
	if p == 0 {
		return LevelNovice
	}
	for _, band := range levelBands {
		if p < band.below {
			return band.level
		}
	}
	return LevelMaster
}

// ExamUnlocked reports whether the master exam is available.
func ExamUnlocked(known int) bool {
	return known >= ExamUnlockThreshold
}
