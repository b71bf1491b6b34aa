package handlers

import (
	"errors"
	"net/http"

	"github.com/Loboo34/heliverse-api/models"
	"github.com/Loboo34/heliverse-api/services"
	"github.com/Loboo34/heliverse-api/utils"
)

const (
	msgUserNotFound = "User not found"
	msgUserExists   = "User with this email already exists"
)

type deleteResponse struct {
	models.DeleteResult
	Error string `json:"error,omitempty"`
}

// AllUsers handles GET /allUsers.
func (h *Handler) AllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	users, err := h.users.ListAll(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, msgUserNotFound, msgUserExists)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// UsersPage handles GET /users?page&limit.
func (h *Handler) UsersPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	page, err := h.users.ListPage(ctx, utils.QueryInt(r, "page"), utils.QueryInt(r, "limit"))
	if err != nil {
		h.writeServiceError(w, r, err, msgUserNotFound, msgUserExists)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathObjectID(r, "id")
	if err != nil {
		h.badID(w, r, "id")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err, msgUserNotFound, msgUserExists)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// AddUser handles POST /addUser.
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		badBody(w, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Create(ctx, in)
	if err != nil {
		h.writeServiceError(w, r, err, msgUserNotFound, msgUserExists)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.CreatedResponse{
		Message:    "User added successfully",
		User:       user,
		StatusCode: http.StatusOK,
	})
}

// UpdateUser handles PUT /updateUser/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathObjectID(r, "id")
	if err != nil {
		h.badID(w, r, "id")
		return
	}

	// A missing body is an empty patch.
	var patch models.UserPatch
	if err := utils.DecodeJSON(w, r, &patch); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		badBody(w, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.users.Update(ctx, id, patch); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		h.writeServiceError(w, r, err, msgUserNotFound, msgUserExists)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "User updated successfully")
}

// DeleteUser handles DELETE /deleteUser/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathObjectID(r, "id")
	if err != nil {
		h.badID(w, r, "id")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.users.Delete(ctx, id)
	h.writeDelete(w, r, result, err, msgUserNotFound)
}

// writeDelete answers a delete: 200 with the count, or 404 carrying a zero count.
func (h *Handler) writeDelete(w http.ResponseWriter, r *http.Request, result models.DeleteResult, err error, notFound string) {
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, deleteResponse{DeleteResult: result})
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithJSON(w, http.StatusNotFound, deleteResponse{DeleteResult: result, Error: notFound})
	default:
		h.writeServiceError(w, r, err, notFound, "")
	}
}
