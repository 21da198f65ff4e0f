package internal

import (
	"net/http"

	"devstats/internal/controllers"
	"devstats/internal/providers"
)

func InitRoutes(statsController *controllers.StatsController, enquiryController *controllers.EnquiryController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/stats/leetcode/{username}", http.HandlerFunc(statsController.GetLeetCodeStats))
	routers.Get("/api/github/repos/{username}", http.HandlerFunc(statsController.GetGitHubRepos))
	routers.Get("/api/stats/github/{username}", http.HandlerFunc(statsController.GetGitHubStats))
	routers.Post("/api/enquiries", http.HandlerFunc(enquiryController.SubmitEnquiry))
	return routers
}
