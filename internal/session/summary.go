package session

// Summary holds the data displayed on the session summary screen.
type Summary struct {
	Total         int
	Mastered      int
	StillLearning int
	Remaining     int

	// MasteredIDs and StillLearningIDs follow queue order.
	MasteredIDs      []int
	StillLearningIDs []int
}

// CanDrill reports whether a still-learning drill-down is worth offering.
func (s Summary) CanDrill() bool {
	return s.StillLearning > 0
}

// BuildSummary creates a Summary from q.
func BuildSummary(q *Queue) Summary {
	if q == nil {
		return Summary{}
	}
	s := Summary{
		Total:     q.Len(),
		Remaining: q.Remaining(),
	}
	for _, it := range q.Items {
		if _, ok := q.Mastered[it.ID]; ok {
			s.MasteredIDs = append(s.MasteredIDs, it.ID)
			continue
		}
		if _, ok := q.StillLearning[it.ID]; ok {
			s.StillLearningIDs = append(s.StillLearningIDs, it.ID)
		}
	}
	s.Mastered = len(s.MasteredIDs)
	s.StillLearning = len(s.StillLearningIDs)
	return s
}
