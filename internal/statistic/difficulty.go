package statistic

import "devstats/internal/models"

// Summarize builds the problem-solving payload from the accepted-submission
// counts and the per-tier question totals. Missing tiers count as zero and
// nothing is clamped, so solved may exceed total if upstream disagrees with
// itself.
func Summarize(submissions, totals []models.DifficultyCount, ranking int) models.ProblemStats {
	easy := summarizeTier(submissions, totals, models.DifficultyEasy)
	medium := summarizeTier(submissions, totals, models.DifficultyMedium)
	hard := summarizeTier(submissions, totals, models.DifficultyHard)

	return models.ProblemStats{
		TotalSolved:    countFor(submissions, models.DifficultyAll),
		EasySolved:     easy.Solved,
		MediumSolved:   medium.Solved,
		HardSolved:     hard.Solved,
		TotalEasy:      easy.Total,
		TotalMedium:    medium.Total,
		TotalHard:      hard.Total,
		TotalQuestions: easy.Total + medium.Total + hard.Total,
		Ranking:        ranking,
	}
}

func summarizeTier(submissions, totals []models.DifficultyCount, difficulty string) models.DifficultySummary {
	return models.DifficultySummary{
		Solved: countFor(submissions, difficulty),
		Total:  countFor(totals, difficulty),
	}
}

// countFor returns the count of the first entry whose tier matches exactly.
func countFor(entries []models.DifficultyCount, difficulty string) int {
	for _, e := range entries {
		if e.Difficulty == difficulty {
			return e.Count.Int()
		}
	}
	return 0
}
