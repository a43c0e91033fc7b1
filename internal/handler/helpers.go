package handler

import (
	"net/http"
	"reflect"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false after writing the error response when validation fails, so
// the caller must return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := ""
		for _, fe := range err.(validator.ValidationErrors) {
			if fields != "" {
				fields += ", "
			}
			fields += fe.Field() + " (" + fe.Tag() + ")"
		}
		c.JSON(http.StatusUnprocessableEntity, dto.Fail("Error de validación: "+fields))
		return false
	}
	return true
}

// respondError translates a use-case error into the uniform failure envelope.
// The status comes from the error kind; unknown errors become a generic 500
// so internals never leak.
func respondError(c *gin.Context, err error) {
	status := apierror.StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !apierror.IsKind(err, apierror.KindStorage) {
		msg = "Error interno del servidor"
	}
	c.JSON(status, dto.Fail(msg))
}

func respondOK(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, dto.OKMessage(msg, data))
}

func respondCreated(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, dto.OKMessage(msg, data))
}

func parseIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return "", false
	}
	return id, true
}
