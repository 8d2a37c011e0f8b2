package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsGet(t *testing.T) {
	t.Parallel()

	s := Settings{"theme": "dark", "empty": ""}

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{name: "present", key: "theme", fallback: "light", want: "dark"},
		{name: "present but empty", key: "empty", fallback: "x", want: ""},
		{name: "absent", key: "font", fallback: "mono", want: "mono"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Get(tt.key, tt.fallback))
		})
	}
}

func TestSettingsSetDelete(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set("a", "1")
	s.Set("a", "2")
	assert.Equal(t, Settings{"a": "2"}, s)

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.Empty(t, s)
}

func TestSettingsKeysSorted(t *testing.T) {
	t.Parallel()

	s := Settings{"b": "", "c": "", "a": ""}
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
	assert.Empty(t, Settings(nil).Keys())
}

func TestSettingsClone(t *testing.T) {
	t.Parallel()

	original := Settings{"a": "1"}
	clone := original.Clone()
	clone.Set("a", "2")

	assert.Equal(t, "1", original["a"])

	var nilSettings Settings
	assert.NotNil(t, nilSettings.Clone())
}
