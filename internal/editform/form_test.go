package editform

import (
	"testing"
	"time"

	"fintech-admin-be/internal/schema"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	Id       string
	Name     string
	Group    string
	Limit    float64
	Active   bool
	ExpireAt time.Time
}

func profileFields() []schema.FieldSpec[profile] {
	return []schema.FieldSpec[profile]{
		{
			Name: "id", Kind: schema.FieldText, ReadOnly: true,
			Get: func(p *profile) any { return p.Id },
		},
		{
			Name: "name", Kind: schema.FieldText,
			Get: func(p *profile) any { return p.Name },
			Set: func(p *profile, v any) { p.Name = v.(string) },
		},
		{
			Name: "group", Kind: schema.FieldSelect, Options: []string{"STANDARD", "MERCHANT", "STAFF"},
			Get: func(p *profile) any { return p.Group },
			Set: func(p *profile, v any) { p.Group = v.(string) },
		},
		{
			Name: "limit", Kind: schema.FieldNumber,
			Get: func(p *profile) any { return p.Limit },
			Set: func(p *profile, v any) { p.Limit = v.(float64) },
		},
		{
			Name: "active", Kind: schema.FieldSwitch,
			Get: func(p *profile) any { return p.Active },
			Set: func(p *profile, v any) { p.Active = v.(bool) },
		},
		{
			Name: "expire_at", Kind: schema.FieldDate,
			Get: func(p *profile) any { return p.ExpireAt },
			Set: func(p *profile, v any) { p.ExpireAt = v.(time.Time) },
		},
	}
}

func TestOpenSeedsDraftAndSubmitReturnsIt(t *testing.T) {
	f := New(profileFields())
	f.Open(profile{Id: "u-1", Name: "Ada", Group: "STANDARD"})

	assert.True(t, f.IsOpen())
	assert.NoError(t, f.SetValue("name", "Ada Okafor"))
	assert.NoError(t, f.SetValue("group", "MERCHANT"))

	got, err := f.Submit()
	assert.NoError(t, err)
	assert.Equal(t, "Ada Okafor", got.Name)
	assert.Equal(t, "MERCHANT", got.Group)
	assert.Equal(t, "u-1", got.Id)
	assert.False(t, f.IsOpen())
}

func TestStateDoesNotLeakBetweenDialogs(t *testing.T) {
	f := New(profileFields())

	f.Open(profile{Name: "First"})
	assert.NoError(t, f.SetValue("limit", "oops")) // records an error
	f.Close()

	f.Open(profile{Name: "Second"})
	v, ok := f.Value("name")
	assert.True(t, ok)
	assert.Equal(t, "Second", v)

	// Previous session's coercion error is gone.
	_, err := f.Submit()
	assert.NoError(t, err)
}

func TestReadOnlyAndUnknownFieldsRejected(t *testing.T) {
	f := New(profileFields())
	f.Open(profile{Id: "u-1"})

	assert.Error(t, f.SetValue("id", "u-2"))
	assert.Error(t, f.SetValue("nope", "x"))

	got, err := f.Submit()
	assert.NoError(t, err)
	assert.Equal(t, "u-1", got.Id)
}

func TestClosedFormRejectsWrites(t *testing.T) {
	f := New(profileFields())
	assert.Error(t, f.SetValue("name", "Ada"))
	_, err := f.Submit()
	assert.Error(t, err)
}

func TestNumberCoercion(t *testing.T) {
	f := New(profileFields())
	f.Open(profile{})

	assert.NoError(t, f.SetValue("limit", "2500.50"))
	v, _ := f.Value("limit")
	assert.Equal(t, 2500.50, v)

	// Invalid input lands as zero in the draft and fails the submit.
	assert.NoError(t, f.SetValue("limit", "abc"))
	v, _ = f.Value("limit")
	assert.Equal(t, float64(0), v)

	_, err := f.Submit()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
	assert.True(t, f.IsOpen())

	// Fixing the field clears the error.
	assert.NoError(t, f.SetValue("limit", 100.0))
	_, err = f.Submit()
	assert.NoError(t, err)
}

func TestSelectRestrictedToOptions(t *testing.T) {
	f := New(profileFields())
	f.Open(profile{})

	assert.NoError(t, f.SetValue("group", "ADMIN"))
	_, err := f.Submit()
	assert.Error(t, err)

	assert.NoError(t, f.SetValue("group", "STAFF"))
	got, err := f.Submit()
	assert.NoError(t, err)
	assert.Equal(t, "STAFF", got.Group)
}

func TestSwitchCoercion(t *testing.T) {
	f := New(profileFields())
	f.Open(profile{})

	assert.NoError(t, f.SetValue("active", true))
	v, _ := f.Value("active")
	assert.Equal(t, true, v)

	assert.NoError(t, f.SetValue("active", "1"))
	v, _ = f.Value("active")
	assert.Equal(t, true, v)

	assert.NoError(t, f.SetValue("active", "false"))
	v, _ = f.Value("active")
	assert.Equal(t, false, v)
}

func TestDateParsedAsUTC(t *testing.T) {
	f := New(profileFields())

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "rfc3339 with zone", raw: "2025-06-01T10:00:00+01:00", want: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		{name: "datetime-local", raw: "2025-06-01T09:00", want: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		{name: "date only", raw: "2025-06-01", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.Open(profile{})
			assert.NoError(t, f.SetValue("expire_at", tt.raw))
			got, err := f.Submit()
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got.ExpireAt), "got %v", got.ExpireAt)
		})
	}

	f.Open(profile{})
	assert.NoError(t, f.SetValue("expire_at", "junk"))
	_, err := f.Submit()
	assert.Error(t, err)
}
