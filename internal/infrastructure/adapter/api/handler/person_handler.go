package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Business-outcome messages kept stable across releases; clients match on them.
const (
	msgUsersNotFound   = "Users not found"
	msgUsersFound      = "Users found"
	msgUserFound       = "User found"
	msgUserNotFound    = "User not found"
	msgNewUserAdded    = "New user added"
	msgNothingToUpdate = "Nothing to update"
	msgNothingToDelete = "Nothing to delete"
	msgUserLocked      = "User not available, try later"
	msgUserDeleted     = "User deleted"
	msgUserUpdated     = "User updated"
	msgMissingParams   = "Request didn't contain obligatory parameters"
)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	personUseCase usecase.PersonUseCase
	logger        coreport.Logger
}

// NewPersonHandler creates a new person handler instance
func NewPersonHandler(
	personUseCase usecase.PersonUseCase,
	logger coreport.Logger,
) *PersonHandler {
	return &PersonHandler{
		personUseCase: personUseCase,
		logger:        logger,
	}
}

// GetUsers handles the GET /rest_api/users endpoint
func (h *PersonHandler) GetUsers(c *gin.Context) {
	persons, err := h.personUseCase.ListPersons(c.Request.Context())
	if err != nil {
		h.internalError(c, "Error listing users", err, nil)
		return
	}

	if len(persons) == 0 {
		c.JSON(http.StatusOK, dto.MessageResponse{Msg: msgUsersNotFound})
		return
	}

	payloads := make([]dto.PersonPayload, 0, len(persons))
	for _, p := range persons {
		payloads = append(payloads, dto.NewPersonPayload(p))
	}

	c.JSON(http.StatusOK, dto.UsersResponse{
		Msg:   msgUsersFound,
		Users: payloads,
	})
}

// GetUser handles the GET /rest_api/user endpoint
func (h *PersonHandler) GetUser(c *gin.Context) {
	req, ok := h.bindRequest(c, "id")
	if !ok {
		return
	}

	person, err := h.personUseCase.GetPerson(c.Request.Context(), *req.ID)
	if err != nil {
		if domainerr.IsInvalidInputError(err) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
			return
		}
		if domainerr.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, dto.MessageWithIDResponse{
				Msg: msgUserNotFound,
				ID:  *req.ID,
			})
			return
		}
		h.internalError(c, "Error getting user", err, map[string]any{"id": *req.ID})
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Msg:  msgUserFound,
		User: []dto.PersonPayload{dto.NewPersonPayload(person)},
	})
}

// AddUser handles the POST /rest_api/user endpoint
func (h *PersonHandler) AddUser(c *gin.Context) {
	req, ok := h.bindRequest(c, "name", "surname", "birth", "points")
	if !ok {
		return
	}

	person, err := h.personUseCase.CreatePerson(c.Request.Context(), req.ToInput())
	if err != nil {
		if domainerr.IsInvalidInputError(err) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
			return
		}
		h.internalError(c, "Error adding user", err, nil)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		Msg:  msgNewUserAdded,
		User: dto.NewPersonPayload(person),
	})
}

// UpdateUser handles the PUT /rest_api/user endpoint
func (h *PersonHandler) UpdateUser(c *gin.Context) {
	req, ok := h.bindRequest(c, "id", "name", "surname", "birth", "points")
	if !ok {
		return
	}

	person, err := h.personUseCase.UpdatePerson(c.Request.Context(), *req.ID, req.ToInput())
	if err != nil {
		switch {
		case domainerr.IsInvalidInputError(err):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
		case domainerr.IsNotFoundError(err):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Msg: msgNothingToUpdate})
		case domainerr.IsLockedError(err):
			c.JSON(http.StatusLocked, dto.MessageWithIDResponse{
				Msg: msgUserLocked,
				ID:  *req.ID,
			})
		default:
			h.internalError(c, "Error updating user", err, map[string]any{"id": *req.ID})
		}
		return
	}

	// Like the single-record read, the updated record travels as a
	// one-element list.
	c.JSON(http.StatusOK, dto.UserListResponse{
		Msg:  msgUserUpdated,
		User: []dto.PersonPayload{dto.NewPersonPayload(person)},
	})
}

// DeleteUser handles the DELETE /rest_api/user endpoint
func (h *PersonHandler) DeleteUser(c *gin.Context) {
	req, ok := h.bindRequest(c, "id")
	if !ok {
		return
	}

	if err := h.personUseCase.DeletePerson(c.Request.Context(), *req.ID); err != nil {
		switch {
		case domainerr.IsInvalidInputError(err):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
		case domainerr.IsLockedError(err):
			c.JSON(http.StatusLocked, dto.MessageWithIDResponse{
				Msg: msgUserLocked,
				ID:  *req.ID,
			})
		case domainerr.IsNotFoundError(err):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Msg: msgNothingToDelete})
		default:
			h.internalError(c, "Error deleting user", err, map[string]any{"id": *req.ID})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageWithIDResponse{
		Msg: msgUserDeleted,
		ID:  *req.ID,
	})
}

// bindRequest decodes the JSON body and rejects requests missing any of the
// obligatory parameters for the route
func (h *PersonHandler) bindRequest(c *gin.Context, required ...string) (*dto.PersonRequest, bool) {
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
		return nil, false
	}

	if missing := req.MissingFields(required...); len(missing) > 0 {
		h.logger.Debug("Request missing obligatory parameters", map[string]any{
			"path":    c.Request.URL.Path,
			"missing": missing,
		})
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgMissingParams})
		return nil, false
	}

	return &req, true
}

func (h *PersonHandler) internalError(c *gin.Context, msg string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["path"] = c.Request.URL.Path
	h.logger.Error(msg, fields)

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: "Internal server error",
	})
}
