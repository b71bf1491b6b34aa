package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Loboo34/heliverse-api/utils"
)

// Route describes one endpoint; the same table drives registration and the
// directory page.
type Route struct {
	Method      string
	Path        string
	Description string
	Handler     http.HandlerFunc
}

func (h *Handler) Routes() []Route {
	return []Route{
		{http.MethodGet, "/", "Home page", h.Directory},
		{http.MethodGet, "/healthz", "Store health check", h.Health},
		{http.MethodGet, "/allUsers", "Get all users", h.AllUsers},
		{http.MethodGet, "/users", "Get paginated users", h.UsersPage},
		{http.MethodGet, "/users/{id}", "Get a user by ID", h.GetUser},
		{http.MethodPost, "/addUser", "Create a new user", h.AddUser},
		{http.MethodDelete, "/deleteUser/{id}", "Delete a user", h.DeleteUser},
		{http.MethodPut, "/updateUser/{id}", "Update a user", h.UpdateUser},
		{http.MethodPost, "/addTeam", "Create a new team", h.AddTeam},
		{http.MethodGet, "/allTeams", "Get all teams", h.AllTeams},
		{http.MethodDelete, "/deleteTeam/{id}", "Delete a team", h.DeleteTeam},
	}
}

// NewRouter registers every route behind the given middleware. OPTIONS is
// matched on each path so CORS preflights reach the middleware chain.
func NewRouter(h *Handler, mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}

	for _, rt := range h.Routes() {
		r.HandleFunc(rt.Path, rt.Handler).Methods(rt.Method, http.MethodOptions)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found", nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
