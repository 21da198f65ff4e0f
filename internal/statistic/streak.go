package statistic

import "devstats/internal/models"

// CurrentStreak counts the most recent run of active days. days must be
// ordered oldest to newest. Only the newest day may be zero without ending
// the run, since today can still be in progress.
func CurrentStreak(days []models.ContributionDay) int {
	streak := 0
	last := len(days) - 1
	for i := last; i >= 0; i-- {
		if days[i].Count > 0 {
			streak++
			continue
		}
		if i == last {
			continue
		}
		break
	}
	return streak
}
