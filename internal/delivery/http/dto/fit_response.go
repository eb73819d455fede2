package dto

type FitResponse struct {
	FitScore        int      `json:"fit_score"`
	MatchType       string   `json:"match_type"`
	SoughtPositions []string `json:"sought_positions"`
}
