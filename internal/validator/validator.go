// Package validator decodes and sanitises gateway request bodies and reports
// every missing required field at once.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// ValidationError lists the required fields that were absent, empty or not strings.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = "'" + f + "'"
	}
	return "missing parameter " + strings.Join(quoted, ", ")
}

// escaper applies the HTML entity set clients of the v1 API expect.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	"\\", "&#x5C;",
	"`", "&#96;",
)

// Validator binds JSON bodies onto request structs whose fields are strings
// tagged with `validate:"required"`. The underlying validator caches struct
// metadata; reuse the instance.
type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Sanitize normalises, trims and HTML-escapes a field value.
func Sanitize(s string) string {
	return escaper.Replace(strings.TrimSpace(norm.NFC.String(s)))
}

// Bind decodes body into dst, a pointer to a request struct. Only string
// values are accepted; anything else is treated as missing. A body that is
// not a JSON object leaves every field missing.
func (v *Validator) Bind(body io.Reader, dst any) error {
	var raw map[string]any
	if body != nil {
		if err := json.NewDecoder(body).Decode(&raw); err != nil {
			raw = nil
		}
	}

	// Keys must match a json tag exactly; encoding/json would otherwise
	// accept "Text" or "TEXT" for "text".
	names := jsonNames(dst)
	clean := make(map[string]string, len(raw))
	for k, val := range raw {
		if _, ok := names[k]; !ok {
			continue
		}
		if s, ok := val.(string); ok {
			clean[k] = Sanitize(s)
		}
	}

	data, err := json.Marshal(clean)
	if err != nil {
		return fmt.Errorf("failed to re-encode request: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to bind request: %w", err)
	}

	return v.Check(dst)
}

func jsonNames(dst any) map[string]struct{} {
	names := make(map[string]struct{})
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = fld.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// Check validates an already populated request struct.
func (v *Validator) Check(dst any) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}

// Required checks a single named value such as a path parameter.
func Required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Fields: []string{name}}
	}
	return nil
}
