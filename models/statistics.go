package models

// Statistics summarizes a task collection at a point in time. Overdue is
// evaluated against the clock when the statistics are computed.
type Statistics struct {
	Total          int     `json:"total"`
	Todo           int     `json:"todo"`
	InProgress     int     `json:"in_progress"`
	Done           int     `json:"done"`
	Cancelled      int     `json:"cancelled"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

// ComputeStatistics tallies the given tasks. The completion rate is
// done/total*100, defined as 0 for an empty collection.
func ComputeStatistics(tasks []Task) Statistics {
	var st Statistics
	st.Total = len(tasks)
	for i := range tasks {
		switch tasks[i].Status {
		case StatusTodo:
			st.Todo++
		case StatusInProgress:
			st.InProgress++
		case StatusDone:
			st.Done++
		case StatusCancelled:
			st.Cancelled++
		}
		if tasks[i].IsOverdue() {
			st.Overdue++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = float64(st.Done) / float64(st.Total) * 100
	}
	return st
}
