package models

import "strings"

// ContributionDay is one day of the flattened calendar. Level is the index of
// the upstream symbolic level, or -1 when the level name is not recognized.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type ContributionSummary struct {
	TotalContributions       int               `json:"totalContributions"`
	TotalCommitContributions int               `json:"totalCommitContributions"`
	CurrentStreak            int               `json:"currentStreak"`
	Contributions            []ContributionDay `json:"contributions"`
}

// GitHubContributionsResponse is the GraphQL envelope of the contribution
// calendar query.
type GitHubContributionsResponse struct {
	Data   *GitHubContributionsData `json:"data"`
	Errors []GraphQLError           `json:"errors"`
}

type GraphQLError struct {
	Message string `json:"message"`
}

type GitHubContributionsData struct {
	User *GitHubUser `json:"user"`
}

type GitHubUser struct {
	ContributionsCollection *ContributionsCollection `json:"contributionsCollection"`
}

type ContributionsCollection struct {
	TotalCommitContributions LooseInt              `json:"totalCommitContributions"`
	ContributionCalendar     *ContributionCalendar `json:"contributionCalendar"`
}

type ContributionCalendar struct {
	TotalContributions LooseInt           `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

type ContributionWeek struct {
	ContributionDays []CalendarDay `json:"contributionDays"`
}

type CalendarDay struct {
	Date              string   `json:"date"`
	ContributionCount LooseInt `json:"contributionCount"`
	ContributionLevel string   `json:"contributionLevel"`
}

// ErrorMessages joins all GraphQL error messages, or returns "" when there are none.
func (r *GitHubContributionsResponse) ErrorMessages() string {
	if r == nil || len(r.Errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, ", ")
}

func (r *GitHubContributionsResponse) Collection() *ContributionsCollection {
	if r == nil || r.Data == nil || r.Data.User == nil {
		return nil
	}
	return r.Data.User.ContributionsCollection
}

func (c *ContributionsCollection) Calendar() *ContributionCalendar {
	if c == nil {
		return nil
	}
	return c.ContributionCalendar
}

func (c *ContributionsCollection) CommitContributions() int {
	if c == nil {
		return 0
	}
	return c.TotalCommitContributions.Int()
}

func (c *ContributionCalendar) Total() int {
	if c == nil {
		return 0
	}
	return c.TotalContributions.Int()
}
