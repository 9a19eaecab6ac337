package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// bindJSON binds and validates a JSON body, answering 400 with the joined
// field errors on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, formatBindingError(err))
		return false
	}
	return true
}

// bindQuery binds query string parameters, answering 400 on failure.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondError(c, http.StatusBadRequest, formatBindingError(err))
		return false
	}
	return true
}

func formatBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("%s不能为空", fieldName(fe)))
			case "email":
				parts = append(parts, "邮箱格式不正确")
			case "max":
				parts = append(parts, fmt.Sprintf("%s长度不能超过%s", fieldName(fe), fe.Param()))
			case "min":
				parts = append(parts, fmt.Sprintf("%s不能少于%s项", fieldName(fe), fe.Param()))
			case "gte":
				parts = append(parts, fmt.Sprintf("%s不能小于%s", fieldName(fe), fe.Param()))
			default:
				parts = append(parts, fmt.Sprintf("%s参数无效", fieldName(fe)))
			}
		}
		return strings.Join(parts, ", ")
	}
	return "请求参数格式错误"
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
}

// parseIDParam reads a UUID path parameter, answering 400 on bad input.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的ID格式")
		return uuid.Nil, false
	}
	return id, true
}
