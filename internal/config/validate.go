package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/winmaps/drivemap/internal/drive"
)

// validate is the shared validator instance with the drivemap field checks
// registered. Struct tags cover per-field rules; cross-field rules live in
// Validate below.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field paths using toml key names so messages match what the
	// user actually typed in the file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	for tag, fn := range map[string]validator.Func{
		"driveletter": validDriveLetter,
		"uncpath":     validUNCPath,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

func validDriveLetter(fl validator.FieldLevel) bool {
	_, err := drive.ParseLetter(fl.Field().String())

	return err == nil
}

func validUNCPath(fl validator.FieldLevel) bool {
	_, err := drive.ParseUNC(fl.Field().String())

	return err == nil
}

// Validate checks all configuration values and returns all errors found.
// It accumulates every error rather than stopping at the first, so users
// see a complete report and can fix all issues in one pass.
func Validate(cfg *Config) error {
	var errs []error

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}

	errs = append(errs, validateDomain(cfg.Domain)...)
	errs = append(errs, validateMappings(cfg.Mappings)...)

	return errors.Join(errs...)
}

// fieldError translates a validator field error into the message style used
// throughout this package: "key: problem; got value". The driveletter and
// uncpath tags re-run the parse so the message carries the precise reason
// the value was rejected.
func fieldError(fe validator.FieldError) error {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: must not be empty", field)
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")

		return fmt.Errorf("%s: must be one of %s; got %q", field, allowed, fe.Value())
	case "driveletter":
		if _, err := drive.ParseLetter(stringValue(fe)); err != nil {
			return fmt.Errorf("%s: %v", field, err)
		}
	case "uncpath":
		if _, err := drive.ParseUNC(stringValue(fe)); err != nil {
			return fmt.Errorf("%s: %v", field, err)
		}
	}

	return fmt.Errorf("%s: failed %s check; got %q", field, fe.Tag(), fe.Value())
}

// fieldPath strips the root struct name from the namespace, leaving the
// toml key path: "Config.mapping[0].letter" becomes "mapping[0].letter".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func stringValue(fe validator.FieldError) string {
	s, _ := fe.Value().(string)

	return s
}

// validateDomain rejects qualified names in the domain hint. The hint is
// prepended to bare usernames, so it must itself be a bare domain name.
func validateDomain(domain string) []error {
	if domain == "" {
		return nil
	}

	if strings.ContainsAny(domain, `\/@`) {
		return []error{fmt.Errorf(`domain: must be a bare domain name without \ / or @; got %q`, domain)}
	}

	return nil
}

// validateMappings rejects duplicate drive letters across mapping entries.
// The comparison is case-insensitive because letters normalize to uppercase.
func validateMappings(entries []MappingEntry) []error {
	var errs []error

	seen := make(map[string]int, len(entries))

	for i := range entries {
		letter, err := drive.ParseLetter(entries[i].Letter)
		if err != nil {
			continue // already reported by the driveletter tag
		}

		if first, dup := seen[letter.String()]; dup {
			errs = append(errs, fmt.Errorf(
				"mapping[%d].letter: %s already used by mapping[%d]", i, letter, first))

			continue
		}

		seen[letter.String()] = i
	}

	return errs
}
