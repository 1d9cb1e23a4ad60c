package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// title references look like "GRN 12345/678" or "HSD 4321/9"
var titleIdPattern = regexp.MustCompile(`^(GRN|GM|HSD|HSM|PN) \d+/\d+$`)

// IsValidTitleId returns is a land-title reference valid or not
func IsValidTitleId(titleId string) bool {
	return titleIdPattern.MatchString(titleId)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
