package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/senda-infinita/internal/domain"
	apperrors "github.com/senda-infinita/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// difficulty is validated in several DTOs; registering it once keeps the
	// whitelist in a single place.
	_ = validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return domain.IsValidDifficulty(fl.Field().String())
	})
}

// Validate runs struct-tag validation on s. Failures come back as a
// VALIDATION_ERROR with per-field details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return apperrors.ErrValidation.WithDetails(details)
	}
	return apperrors.ErrValidation
}
