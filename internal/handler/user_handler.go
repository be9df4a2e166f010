package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateUserRequest is a partial profile update; absent fields are kept.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1,maxbytes=72"`
}

// UpdateUser godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id", apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.ErrInvalidToken
	}
	// ownership is checked before the body is even read
	if claims.UserID != id {
		return apperrors.ErrForbidden
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := service.UserUpdate{Name: req.Name, Password: req.Password}
	if err := h.svc.UpdateUser(c.Request().Context(), claims.UserID, id, update); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User updated successfully"})
}
