package stats

// SessionStatsRequest is the request for the session-stats service.
type SessionStatsRequest struct{}

// SessionStatsResponse is a snapshot of the evaluations seen since start.
// ByOperator counts operators that were applied, division by zero included.
type SessionStatsResponse struct {
	Total      int            `json:"total"`
	Succeeded  int            `json:"succeeded"`
	Failed     int            `json:"failed"`
	ByOperator map[string]int `json:"by_operator"`
	ByError    map[string]int `json:"by_error"`
}
