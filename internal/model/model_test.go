package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-assistant/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want model.Priority
		ok   bool
	}{
		{"urgent", model.PriorityUrgent, true},
		{" High ", model.PriorityHigh, true},
		{"LOW", model.PriorityLow, true},
		{"medium", model.PriorityMedium, true},
		{"critical", model.PriorityMedium, false},
		{"", model.PriorityMedium, false},
	}
	for _, tt := range tests {
		got, ok := model.ParsePriority(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestTimeOfDay(t *testing.T) {
	_, err := model.NewTimeOfDay(24, 0)
	assert.Error(t, err)
	_, err = model.NewTimeOfDay(9, 60)
	assert.Error(t, err)

	clock, err := model.ParseTimeOfDay("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", clock.String())

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC), clock.On(day))
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		At *model.TimeOfDay `json:"at"`
	}{At: &model.TimeOfDay{Hour: 14, Minute: 30}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"14:30"}`, string(b))

	var back model.TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"07:45"`), &back))
	assert.Equal(t, model.TimeOfDay{Hour: 7, Minute: 45}, back)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &back))
}

func TestScope_HasOrganization(t *testing.T) {
	assert.False(t, model.Scope{UserID: "alice"}.HasOrganization())
	assert.True(t, model.Scope{UserID: "alice", OrganizationID: "acme"}.HasOrganization())
}
