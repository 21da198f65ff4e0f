package statistic

import "devstats/internal/models"

// ContributionLevels is the upstream level vocabulary in rank order.
var ContributionLevels = []string{
	"NONE",
	"FIRST_QUARTILE",
	"SECOND_QUARTILE",
	"THIRD_QUARTILE",
	"FOURTH_QUARTILE",
}

// LevelIndex maps a symbolic level to its rank, or -1 if it is unknown.
func LevelIndex(name string) int {
	for i, level := range ContributionLevels {
		if level == name {
			return i
		}
	}
	return -1
}

// Flatten turns the week/day calendar into a single day sequence in source
// order, which upstream guarantees to be chronological. A nil calendar
// yields an empty sequence.
func Flatten(calendar *models.ContributionCalendar) []models.ContributionDay {
	days := make([]models.ContributionDay, 0)
	if calendar == nil {
		return days
	}
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, models.ContributionDay{
				Date:  day.Date,
				Count: day.ContributionCount.Int(),
				Level: LevelIndex(day.ContributionLevel),
			})
		}
	}
	return days
}
