package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "stockroom/internal/errors"
)

// MessageResponse is the body of every success response that carries no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewValidator returns a validator with the request-specific tags registered.
// maxbytes bounds a string by its length in bytes rather than in runes.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// A missing required field is ErrMissingFields; other rule failures are 400s
// naming the field.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidBody
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ErrInvalidBody
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return apperrors.ErrMissingFields
		}
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Field %s must not be empty", fe.Field()))
	case "max":
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Field %s must be at most %s characters long", fe.Field(), fe.Param()))
	case "maxbytes":
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Field %s must be at most %s bytes long", fe.Field(), fe.Param()))
	default:
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Field %s is invalid", fe.Field()))
	}
}

// pathID parses a positive integer path parameter. Anything else is
// reported as notFound, as no such resource can exist.
func pathID(c echo.Context, name string, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}
