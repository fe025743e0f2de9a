package dashboard

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	trans         ut.Translator
)

// requestValidator returns the shared validator; field names follow json tags and
// messages are translated to English.
func requestValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = entranslations.RegisterDefaultTranslations(validate, trans)
	})
	return validate, trans
}

// validateFields runs struct validation and returns failing fields keyed by json name,
// or nil when the value is valid.
func validateFields(value interface{}) map[string]string {
	v, translator := requestValidator()
	err := v.Struct(value)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			fields[fieldKey(fe)] = fe.Translate(translator)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// fieldKey drops the struct prefix and any slice index, so "draft.options[1]" becomes "options".
func fieldKey(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	if idx := strings.Index(namespace, "["); idx >= 0 {
		namespace = namespace[:idx]
	}
	return namespace
}
