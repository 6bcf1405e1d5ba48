package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"MediSure/util"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	hhmmPattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Keyed by "<json field>.<tag>"; a bare tag is the fallback for any field.
var validationMessages = map[string]string{
	"required":                util.PLEASE_FILL_ALL_REQUIRED_FIELDS,
	"displayName.min":         util.DISPLAY_NAME_TOO_SHORT,
	"password.min":            util.PASSWORD_TOO_SHORT,
	"email.emailformat":       util.INVALID_EMAIL_FORMAT,
	"confirmPassword.eqfield": util.PASSWORDS_DO_NOT_MATCH,
	"practiceType.oneof":      util.INVALID_PRACTICE_TYPE,
	"gender.oneof":            util.INVALID_GENDER,
	"frequency.hhmm":          util.INVALID_FREQUENCY_TIME,
	"frequency.min":           util.PLEASE_FILL_ALL_REQUIRED_FIELDS,
	"time.hhmm":               util.INVALID_FREQUENCY_TIME,
	"status.oneof":            util.INVALID_DOSAGE_STATUS,
	"hhmm":                    util.INVALID_FREQUENCY_TIME,
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emailformat", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	return v
}

/*
* Turn validator output into one validation AppError
* A missing required field outranks every other rule
* Details keeps the failed rule for every field
 */
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return util.InternalError(err)
	}

	details := map[string]string{}
	var first validator.FieldError
	for _, fe := range verrs {
		field := rootField(fe.Field())
		if _, seen := details[field]; !seen {
			details[field] = fe.Tag()
		}
		if first == nil || (fe.Tag() == "required" && first.Tag() != "required") {
			first = fe
		}
	}
	return util.FieldValidationError(messageFor(first), details)
}

// rootField strips the index from dive errors such as "frequency[1]".
func rootField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

func messageFor(fe validator.FieldError) string {
	field := rootField(fe.Field())
	if msg, ok := validationMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Invalid value for %s", field)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
