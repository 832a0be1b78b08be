package validation

import (
	"testing"

	"travel-journal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title     string `json:"title" validate:"notblank,max=100"`
	Type      string `json:"travel_type" validate:"required,oneof=plan review"`
	StartDate string `json:"start_date" validate:"ymd"`
	Transport string `json:"transport" validate:"omitempty,transport"`
}

func TestStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(sample{Title: "Jeju Trip", Type: "plan", StartDate: "2026-11-01"}))

	tests := []struct {
		name  string
		input sample
		want  string
	}{
		{"blank title", sample{Title: "   ", Type: "plan", StartDate: "2026-11-01"}, "The title field is required"},
		{"bad type", sample{Title: "x", Type: "trip", StartDate: "2026-11-01"}, "The travel_type field must be one of: plan review"},
		{"bad date", sample{Title: "x", Type: "plan", StartDate: "2026/11/01"}, "The start_date field must be a date in YYYY-MM-DD format"},
		{"bad transport", sample{Title: "x", Type: "plan", StartDate: "2026-11-01", Transport: "boat"}, "The transport field must be one of: walk car public taxi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ValidationFailure))
			assert.Equal(t, tt.want, apperr.Message(err))
		})
	}
}

func TestVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("car", "transport", "trans"))

	err := v.Var("boat", "transport", "trans")
	require.Error(t, err)
	assert.Equal(t, "The trans field must be one of: walk car public taxi", apperr.Message(err))
}

func TestIsTransportMode(t *testing.T) {
	assert.True(t, IsTransportMode("public"))
	assert.False(t, IsTransportMode(""))
	assert.False(t, IsTransportMode("CAR"))
}
