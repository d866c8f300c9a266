package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationLevel_IsValid(t *testing.T) {
	for _, level := range EducationLevels() {
		assert.True(t, level.IsValid(), "level %q should be valid", level)
	}
	assert.False(t, EducationLevel("").IsValid())
	assert.False(t, EducationLevel("HIGHER").IsValid())
	assert.False(t, EducationLevel("высшее образование").IsValid())
}

func TestNormalizeEducationLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want EducationLevel
	}{
		{raw: "Высшее образование", want: EducationHigher},
		{raw: "HIGHER", want: EducationHigher},
		{raw: "secondary", want: EducationSecondary},
		{raw: " Special ", want: EducationSpecial},
		{raw: "PhD", want: EducationLevel("PhD")},
		{raw: "", want: EducationLevel("")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEducationLevel(tt.raw))
		})
	}
}

func TestEducationLevel_UnmarshalJSON(t *testing.T) {
	var level EducationLevel
	require.NoError(t, json.Unmarshal([]byte(`"Среднее образование"`), &level))
	assert.Equal(t, EducationSecondary, level)

	require.NoError(t, json.Unmarshal([]byte(`"special"`), &level))
	assert.Equal(t, EducationSpecial, level)

	assert.Error(t, json.Unmarshal([]byte(`3`), &level))
}
