package models

// Difficulty tier names as reported by the competitive-programming API.
// Matching is exact and case-sensitive.
const (
	DifficultyAll    = "All"
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type DifficultyCount struct {
	Difficulty string   `json:"difficulty"`
	Count      LooseInt `json:"count"`
}

// DifficultySummary is the solved/total pair of a single tier. Solved may
// exceed Total when upstream is inconsistent; values are never clamped.
type DifficultySummary struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// ProblemStats is the display payload for problem-solving stats.
// TotalQuestions is always TotalEasy+TotalMedium+TotalHard.
type ProblemStats struct {
	TotalSolved    int `json:"totalSolved"`
	EasySolved     int `json:"easySolved"`
	MediumSolved   int `json:"mediumSolved"`
	HardSolved     int `json:"hardSolved"`
	TotalEasy      int `json:"totalEasy"`
	TotalMedium    int `json:"totalMedium"`
	TotalHard      int `json:"totalHard"`
	TotalQuestions int `json:"totalQuestions"`
	Ranking        int `json:"ranking"`
}

// LeetCodeResponse is the GraphQL envelope of the userPublicProfile query.
// Every level is optional.
type LeetCodeResponse struct {
	Data *LeetCodeData `json:"data"`
}

type LeetCodeData struct {
	AllQuestionsCount []DifficultyCount `json:"allQuestionsCount"`
	MatchedUser       *LeetCodeUser     `json:"matchedUser"`
}

type LeetCodeUser struct {
	Profile           *LeetCodeProfile     `json:"profile"`
	SubmitStatsGlobal *LeetCodeSubmitStats `json:"submitStatsGlobal"`
}

type LeetCodeProfile struct {
	Ranking LooseInt `json:"ranking"`
}

type LeetCodeSubmitStats struct {
	AcSubmissionNum []DifficultyCount `json:"acSubmissionNum"`
}

// MatchedUser returns nil when the response carries no user record.
func (r *LeetCodeResponse) MatchedUser() *LeetCodeUser {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data.MatchedUser
}

func (r *LeetCodeResponse) QuestionCounts() []DifficultyCount {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data.AllQuestionsCount
}

func (u *LeetCodeUser) SubmissionCounts() []DifficultyCount {
	if u == nil || u.SubmitStatsGlobal == nil {
		return nil
	}
	return u.SubmitStatsGlobal.AcSubmissionNum
}

// Ranking is 0 when the profile or its ranking is absent.
func (u *LeetCodeUser) Ranking() int {
	if u == nil || u.Profile == nil {
		return 0
	}
	return u.Profile.Ranking.Int()
}
