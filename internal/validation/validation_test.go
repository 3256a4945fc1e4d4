package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Create(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		wantFields []string // fields expected to carry an error
	}{
		{
			name: "valid minimal body applies defaults",
			data: map[string]any{"name": "Alice", "email": "Alice@Example.COM"},
		},
		{
			name:       "missing required fields",
			data:       map[string]any{},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "unknown field rejected",
			data:       map[string]any{"name": "Alice", "email": "a@b.com", "role": "admin"},
			wantFields: []string{"role"},
		},
		{
			name:       "name too short",
			data:       map[string]any{"name": "A", "email": "a@b.com"},
			wantFields: []string{"name"},
		},
		{
			name:       "invalid email",
			data:       map[string]any{"name": "Alice", "email": "not-an-email"},
			wantFields: []string{"email"},
		},
		{
			name:       "invalid ip address",
			data:       map[string]any{"name": "Alice", "email": "a@b.com", "ipAddress": "999.abc"},
			wantFields: []string{"ipAddress"},
		},
		{
			name:       "active must be boolean",
			data:       map[string]any{"name": "Alice", "email": "a@b.com", "active": "true"},
			wantFields: []string{"active"},
		},
		{
			name: "all violations collected in one pass",
			data: map[string]any{
				"name":      "A",
				"email":     "bad",
				"ipAddress": "x.y.z",
				"blocked":   "nope",
			},
			wantFields: []string{"name", "email", "ipAddress", "blocked"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Validate(tt.data, ModeCreate)

			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestValidate_Create_Normalization(t *testing.T) {
	out, errs := Validate(map[string]any{
		"name":  "  Alice  ",
		"email": "  Alice@Example.COM ",
	}, ModeCreate)

	assert.Empty(t, errs)
	assert.Equal(t, "Alice", *out.Name)
	assert.Equal(t, "alice@example.com", *out.Email)
	assert.True(t, *out.Active, "active defaults to true")
	assert.False(t, *out.Blocked, "blocked defaults to false")
	assert.Nil(t, out.LastLogin)
}

func TestValidate_Update(t *testing.T) {
	t.Run("empty body is valid and sets nothing", func(t *testing.T) {
		out, errs := Validate(map[string]any{}, ModeUpdate)
		assert.Empty(t, errs)
		assert.Nil(t, out.Name)
		assert.Nil(t, out.Email)
		assert.Nil(t, out.Active)
		assert.Nil(t, out.Blocked)
	})

	t.Run("present fields still validated", func(t *testing.T) {
		_, errs := Validate(map[string]any{"email": "broken"}, ModeUpdate)
		assert.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("no defaults applied", func(t *testing.T) {
		out, errs := Validate(map[string]any{"name": "Bob"}, ModeUpdate)
		assert.Empty(t, errs)
		assert.Nil(t, out.Active)
		assert.Nil(t, out.Blocked)
	})

	t.Run("blocked may be patched explicitly", func(t *testing.T) {
		out, errs := Validate(map[string]any{"blocked": true}, ModeUpdate)
		assert.Empty(t, errs)
		assert.True(t, *out.Blocked)
	})
}

func TestValidate_CSV_Active(t *testing.T) {
	tests := []struct {
		value  string
		valid  bool
		active bool
	}{
		{"true", true, true},
		{"false", true, false},
		{"True", true, true},
		{"False", true, false},
		{"1", true, true},
		{"0", true, false},
		{"TRUE", false, false}, // literal set is case-sensitive
		{"yes", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run("active="+tt.value, func(t *testing.T) {
			data := map[string]any{"name": "Alice", "email": "a@b.com", "active": tt.value}
			out, errs := Validate(data, ModeCSV)
			if !tt.valid {
				var fields []string
				for _, e := range errs {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, "active")
				return
			}
			assert.Empty(t, errs)
			assert.Equal(t, tt.active, *out.Active)
		})
	}
}

func TestValidate_CSV_LastLogin(t *testing.T) {
	base := map[string]any{"name": "Alice", "email": "a@b.com", "active": "true"}

	t.Run("iso timestamp", func(t *testing.T) {
		data := cloneWith(base, "lastLogin", "2024-03-01T12:30:00Z")
		out, errs := Validate(data, ModeCSV)
		assert.Empty(t, errs)
		assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), out.LastLogin.UTC())
	})

	t.Run("space separated timestamp", func(t *testing.T) {
		data := cloneWith(base, "lastLogin", "2024-03-01 12:30:00")
		out, errs := Validate(data, ModeCSV)
		assert.Empty(t, errs)
		assert.NotNil(t, out.LastLogin)
	})

	t.Run("empty value allowed", func(t *testing.T) {
		data := cloneWith(base, "lastLogin", "")
		out, errs := Validate(data, ModeCSV)
		assert.Empty(t, errs)
		assert.Nil(t, out.LastLogin)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		data := cloneWith(base, "lastLogin", "yesterday")
		_, errs := Validate(data, ModeCSV)
		assert.Len(t, errs, 1)
		assert.Equal(t, "lastLogin", errs[0].Field)
	})

	t.Run("space separated form rejected outside csv mode", func(t *testing.T) {
		_, errs := Validate(map[string]any{"lastLogin": "2024-03-01 12:30:00"}, ModeUpdate)
		assert.Len(t, errs, 1)
		assert.Equal(t, "lastLogin", errs[0].Field)
	})
}

func TestValidate_CSV_RequiredFields(t *testing.T) {
	_, errs := Validate(map[string]any{}, ModeCSV)

	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "active"}, fields)
}

func TestValidate_CSV_IgnoresBlocked(t *testing.T) {
	// The CSV schema never reads blocked, even when a column sneaks one in.
	out, errs := Validate(map[string]any{
		"name": "Alice", "email": "a@b.com", "active": "true", "blocked": "true",
	}, ModeCSV)

	assert.Empty(t, errs)
	assert.Nil(t, out.Blocked)
}

func cloneWith(base map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}
