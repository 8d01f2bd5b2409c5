package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"fintech-admin-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds all failures into a
// single validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperror.Validation(strings.Join(msgs, "; "))
}
