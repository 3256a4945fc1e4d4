package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avoskresensky/user-admin-service/internal/models"
)

// Mode selects the validation shape variant.
type Mode string

const (
	// ModeCreate requires name and email and applies defaults.
	ModeCreate Mode = "create"
	// ModeUpdate treats every field as optional.
	ModeUpdate Mode = "update"
	// ModeCSV validates one parsed CSV row; active is required and
	// string literals are coerced to their native types.
	ModeCSV Mode = "csv"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// Dotted-quad shape only, octet ranges are not checked.
	ipAddressPattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
)

// csvTimeLayout is the non-ISO timestamp form accepted in CSV rows.
const csvTimeLayout = "2006-01-02 15:04:05"

// csvActiveLiterals is the exact (case-sensitive) set of accepted string
// values for the Active column.
var csvActiveLiterals = map[string]struct{}{
	"true": {}, "false": {}, "True": {}, "False": {}, "1": {}, "0": {},
}

// knownFields is the full field set accepted by create and update bodies.
var knownFields = map[string]struct{}{
	"name": {}, "email": {}, "ipAddress": {}, "location": {},
	"active": {}, "blocked": {}, "lastLogin": {},
}

// Validate checks a candidate user payload against the given mode and
// returns the normalized result. All violations are collected in a single
// pass; the returned slice is empty iff the payload is valid.
// Validate has no side effects.
func Validate(data map[string]any, mode Mode) (models.UserInput, []models.FieldError) {
	var (
		out  models.UserInput
		errs []models.FieldError
	)

	fail := func(field, message string) {
		errs = append(errs, models.FieldError{Field: field, Message: message})
	}

	// Unknown fields are rejected for JSON bodies. CSV rows are shaped by
	// the header check upstream, so extra keys cannot occur there.
	if mode == ModeCreate || mode == ModeUpdate {
		for key := range data {
			if _, ok := knownFields[key]; !ok {
				fail(key, "is not allowed")
			}
		}
	}

	required := mode == ModeCreate || mode == ModeCSV

	if s, present, ok := stringValue(data, "name"); !ok {
		fail("name", "must be a string")
	} else if present {
		s = strings.TrimSpace(s)
		if n := utf8.RuneCountInString(s); n < 2 || n > 100 {
			fail("name", "must be between 2 and 100 characters")
		} else {
			out.Name = &s
		}
	} else if required {
		fail("name", "is required")
	}

	if s, present, ok := stringValue(data, "email"); !ok {
		fail("email", "must be a string")
	} else if present {
		s = strings.ToLower(strings.TrimSpace(s))
		if !emailPattern.MatchString(s) {
			fail("email", "must be a valid email address")
		} else {
			out.Email = &s
		}
	} else if required {
		fail("email", "is required")
	}

	if s, present, ok := stringValue(data, "ipAddress"); !ok {
		fail("ipAddress", "must be a string")
	} else if present {
		s = strings.TrimSpace(s)
		if s != "" && !ipAddressPattern.MatchString(s) {
			fail("ipAddress", "must be a valid IPv4 address")
		} else {
			out.IPAddress = &s
		}
	}

	if s, present, ok := stringValue(data, "location"); !ok {
		fail("location", "must be a string")
	} else if present {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 100 {
			fail("location", "must be at most 100 characters")
		} else {
			out.Location = &s
		}
	}

	validateActive(data, mode, &out, fail)
	validateBlocked(data, mode, &out, fail)
	validateLastLogin(data, mode, &out, fail)

	return out, errs
}

// validateActive handles the active flag. CSV rows carry it as one of a
// fixed set of string literals; JSON bodies carry a native boolean.
func validateActive(data map[string]any, mode Mode, out *models.UserInput, fail func(field, message string)) {
	v, present := data["active"]
	if !present || v == nil {
		switch mode {
		case ModeCreate:
			b := true
			out.Active = &b
		case ModeCSV:
			fail("active", "is required")
		}
		return
	}

	switch val := v.(type) {
	case bool:
		b := val
		out.Active = &b
	case string:
		if mode != ModeCSV {
			fail("active", "must be a boolean")
			return
		}
		if _, ok := csvActiveLiterals[val]; !ok {
			fail("active", "must be one of true, false, True, False, 1, 0")
			return
		}
		lower := strings.ToLower(val)
		b := lower == "true" || lower == "1"
		out.Active = &b
	default:
		fail("active", "must be a boolean")
	}
}

// validateBlocked handles the blocked flag. CSV input never reads it:
// block state is an out-of-band administrative action.
func validateBlocked(data map[string]any, mode Mode, out *models.UserInput, fail func(field, message string)) {
	if mode == ModeCSV {
		return
	}

	v, present := data["blocked"]
	if !present || v == nil {
		if mode == ModeCreate {
			b := false
			out.Blocked = &b
		}
		return
	}

	b, ok := v.(bool)
	if !ok {
		fail("blocked", "must be a boolean")
		return
	}
	out.Blocked = &b
}

func validateLastLogin(data map[string]any, mode Mode, out *models.UserInput, fail func(field, message string)) {
	v, present := data["lastLogin"]
	if !present || v == nil {
		return
	}

	s, ok := v.(string)
	if !ok {
		fail("lastLogin", "must be a timestamp string")
		return
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}

	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	if mode == ModeCSV {
		layouts = append(layouts, csvTimeLayout)
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			out.LastLogin = &ts
			return
		}
	}

	if mode == ModeCSV {
		fail("lastLogin", fmt.Sprintf("must be an ISO-8601 timestamp or match %q", "YYYY-MM-DD HH:MM:SS"))
	} else {
		fail("lastLogin", "must be an ISO-8601 timestamp")
	}
}

// stringValue extracts data[key] as a string. present is false when the key
// is absent or null; ok is false when the value exists but is not a string.
func stringValue(data map[string]any, key string) (s string, present, ok bool) {
	v, exists := data[key]
	if !exists || v == nil {
		return "", false, true
	}
	s, isString := v.(string)
	if !isString {
		return "", true, false
	}
	return s, true, true
}
