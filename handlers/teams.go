package handlers

import (
	"net/http"

	"github.com/Loboo34/heliverse-api/models"
	"github.com/Loboo34/heliverse-api/utils"
)

const (
	msgTeamNotFound = "Team not found"
	msgTeamExists   = "Team with this Name already exists"
)

// AddTeam handles POST /addTeam.
func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var team models.Team
	if err := utils.DecodeJSON(w, r, &team); err != nil {
		badBody(w, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	created, err := h.teams.Create(ctx, team)
	if err != nil {
		h.writeServiceError(w, r, err, msgTeamNotFound, msgTeamExists)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.CreatedResponse{
		Message:    "Team added successfully",
		User:       created,
		StatusCode: http.StatusOK,
	})
}

// AllTeams handles GET /allTeams.
func (h *Handler) AllTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	teams, err := h.teams.ListAll(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, msgTeamNotFound, msgTeamExists)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, teams)
}

// DeleteTeam handles DELETE /deleteTeam/{id}.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathObjectID(r, "id")
	if err != nil {
		h.badID(w, r, "id")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.teams.Delete(ctx, id)
	h.writeDelete(w, r, result, err, msgTeamNotFound)
}
