package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/ricotama/LAPORin/internal/constant"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_category", validateReportCategory)
	return v
}

func validateReportCategory(fl validator.FieldLevel) bool {
	return constant.IsValidCategory(fl.Field().String())
}
