package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"inventory/internal/apierror"
	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Lets numeric tags (gt=0, gte=0) run against decimal.Decimal fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// bindAndValidate binds the JSON body and runs the validator tags. It
// writes the error response itself and returns false when the request
// must stop: 400 for an unreadable body, 422 with per-field tags for
// validation failures.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			_ = c.Error(err)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads an integer path parameter, answering 400 when it is not one.
// Zero and negative ids are left to the store, which has never issued them.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+param))
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the HTTP taxonomy. Anything not
// recognised is handed to middleware.ErrorHandler, which logs it and
// writes the generic 500.
func respondError(c *gin.Context, err error) {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, apierror.New(nf.Error()))
	case errors.Is(err, service.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, apierror.New("Product is out of stock"))
	case errors.Is(err, service.ErrNothingToUpdate):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("No fields to update"))
	default:
		_ = c.Error(err)
	}
}

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.MessageResponse{Message: msg})
}
