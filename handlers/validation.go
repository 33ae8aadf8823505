package handlers

import (
	"errors"

	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type professorStudentURI struct {
	ProfID    string `uri:"profId" binding:"required,alphanum"`
	StudentID string `uri:"studentId" binding:"required,alphanum"`
}

type studentURI struct {
	StudentID string `uri:"studentId" binding:"required,alphanum"`
}

var invalidFieldMessages = map[string]string{
	"StudentID": "Invalid student ID format.",
	"ProfID":    "Invalid professor ID format.",
	"Time":      "Time slot must be provided as a string.",
}

// bindURI binds path parameters into obj and translates validation failures
// into invalid input errors naming the first offending field.
func bindURI(c *gin.Context, obj any) error {
	if err := c.ShouldBindUri(obj); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := invalidFieldMessages[verrs[0].Field()]; ok {
			return utils.InvalidInput("%s", msg)
		}
		return utils.InvalidInput("Invalid value for %s.", verrs[0].Field())
	}
	return utils.InvalidInput("Invalid request.")
}
