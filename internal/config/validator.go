package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"article-tui/internal/article"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// catalogueTags binds struct tags to the catalogue a value must belong to.
var catalogueTags = map[string]article.Catalogue{
	"font_family":      article.FontFamilies,
	"font_size":        article.FontSizes,
	"font_color":       article.FontColors,
	"background_color": article.BackgroundColors,
	"content_width":    article.ContentWidths,
}

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		for tag, catalogue := range catalogueTags {
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				_, ok := catalogue.Lookup(fl.Field().String())
				return ok
			})
		}

		validateInst = v
	})

	return validateInst
}

// FieldError describes one invalid configuration value.
type FieldError struct {
	Field string
	Tag   string
	Value any
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: value %v fails %q", e.Field, e.Value, e.Tag)
}

// ValidationError collects every invalid field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid config: " + strings.Join(parts, "; ")
}

// Validate проверяет конфигурацию без изменений
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Value: fe.Value(),
		})
	}
	return out
}

// Normalize заменяет некорректные значения значениями по умолчанию
// и возвращает ошибку валидации исходных значений.
func (c *Config) Normalize() error {
	err := c.Validate()
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	defaults := DefaultConfig()
	for _, f := range verr.Fields {
		switch {
		case strings.HasSuffix(f.Field, ".Theme"):
			c.Theme = defaults.Theme
		case strings.HasSuffix(f.Field, ".Logging.Level"):
			c.Logging.Level = defaults.Logging.Level
		case strings.HasSuffix(f.Field, ".Defaults.FontFamily"):
			c.Defaults.FontFamily = defaults.Defaults.FontFamily
		case strings.HasSuffix(f.Field, ".Defaults.FontSize"):
			c.Defaults.FontSize = defaults.Defaults.FontSize
		case strings.HasSuffix(f.Field, ".Defaults.FontColor"):
			c.Defaults.FontColor = defaults.Defaults.FontColor
		case strings.HasSuffix(f.Field, ".Defaults.BackgroundColor"):
			c.Defaults.BackgroundColor = defaults.Defaults.BackgroundColor
		case strings.HasSuffix(f.Field, ".Defaults.ContentWidth"):
			c.Defaults.ContentWidth = defaults.Defaults.ContentWidth
		}
	}
	return err
}
