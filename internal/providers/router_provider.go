package providers

import (
	"net/http"

	"devstats/internal/structures"
)

type RouterProviderInterface interface {
	Get(pattern string, handler http.Handler)
	Post(pattern string, handler http.Handler)
	GetRoutes() []structures.Route
	Handler() http.Handler
}

// RouterProvider collects path patterns such as "/api/stats/github/{username}"
// and enforces a single method per pattern.
type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) Get(pattern string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     pattern,
		Handler: methodHandler(http.MethodGet, handler),
	})
}

func (rp *RouterProvider) Post(pattern string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     pattern,
		Handler: methodHandler(http.MethodPost, handler),
	})
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

// Handler mounts every registered route on a fresh ServeMux.
func (rp *RouterProvider) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range rp.routes {
		mux.Handle(route.Url, route.Handler)
	}
	return mux
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}

func methodHandler(method string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
