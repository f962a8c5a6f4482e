// Package forms binds and validates the venue, artist and show submission forms.
package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^[0-9+()\-. ]{7,20}$`)

func init() {
	// Report validation failures under the submitted field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	}
}

// Errors maps a form field to a user-facing message
type Errors map[string]string

// Empty reports whether no field failed
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Merge copies other into e without overwriting existing messages
func (e Errors) Merge(other map[string]string) {
	for k, v := range other {
		if _, ok := e[k]; !ok {
			e[k] = v
		}
	}
}

// Checkbox is a boolean submitted as an HTML checkbox. Absent means false.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler
func (b *Checkbox) UnmarshalParam(param string) error {
	*b = Checkbox(isChecked(param))
	return nil
}

// UnmarshalJSON accepts both JSON booleans and checkbox strings
func (b *Checkbox) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = Checkbox(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("checkbox: %w", err)
	}
	*b = Checkbox(isChecked(s))
	return nil
}

func isChecked(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// checker is implemented by forms with rules beyond struct tags
type checker interface {
	check(errs Errors)
}

// Bind parses the request body into form and returns every failed field.
// The form keeps whatever values were submitted, valid or not.
func Bind(c *gin.Context, form checker) Errors {
	errs := Errors{}
	if err := c.ShouldBind(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs[fe.Field()] = message(fe)
			}
		} else {
			errs["form"] = "The submission could not be read."
		}
	}
	form.check(errs)
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Invalid URL."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Select at least %s.", fe.Param())
	case "gt":
		return "Must be a positive number."
	default:
		return "Invalid value."
	}
}

func checkState(errs Errors, state string) {
	if state != "" && !stateSet[state] {
		errs.Merge(Errors{"state": "Not a valid choice."})
	}
}

func checkGenres(errs Errors, genres []string) {
	for _, g := range genres {
		if !genreSet[g] {
			errs.Merge(Errors{"genres": fmt.Sprintf("'%s' is not a valid choice.", g)})
			return
		}
	}
}

func checkPhone(errs Errors, phone string) {
	if phone != "" && !phoneRegex.MatchString(phone) {
		errs.Merge(Errors{"phone": "Invalid phone number."})
	}
}

func trim(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
