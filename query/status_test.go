package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/case-monitor-api/models"
)

func TestDeriveStatus(t *testing.T) {
	pending := models.Accused{Status: models.AccusedDecisionPending}
	arrested := models.Accused{Status: models.AccusedArrested}
	notArrested := models.Accused{Status: models.AccusedNotArrested}

	tests := []struct {
		name          string
		accused       []models.Accused
		legacyPending bool
		want          string
	}{
		{name: "no accused, legacy flag set", legacyPending: true, want: StatusDecisionPending},
		{name: "no accused, legacy flag clear", want: StatusCompleted},
		{name: "all pending", accused: []models.Accused{pending, pending}, want: StatusDecisionPending},
		{name: "none pending", accused: []models.Accused{arrested, notArrested}, want: StatusCompleted},
		{name: "some pending", accused: []models.Accused{arrested, pending}, want: StatusPartial},
		{name: "single pending accused", accused: []models.Accused{pending}, want: StatusDecisionPending},
		{
			name:          "accused present, legacy flag ignored",
			accused:       []models.Accused{arrested},
			legacyPending: true,
			want:          StatusCompleted,
		},
		{
			name:    "status compared case-insensitively",
			accused: []models.Accused{{Status: "DECISION PENDING"}, {Status: " decision pending "}},
			want:    StatusDecisionPending,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.accused, tt.legacyPending))
		})
	}
}

func TestDeriveStatusResolvingAccusedNeverRegresses(t *testing.T) {
	// resolving one pending accused at a time only moves the status forward
	accused := []models.Accused{
		{Status: models.AccusedDecisionPending},
		{Status: models.AccusedDecisionPending},
		{Status: models.AccusedDecisionPending},
	}
	rank := map[string]int{StatusDecisionPending: 0, StatusPartial: 1, StatusCompleted: 2}

	prev := DeriveStatus(accused, false)
	assert.Equal(t, StatusDecisionPending, prev)
	for i := range accused {
		accused[i].Status = models.AccusedArrested
		got := DeriveStatus(accused, false)
		assert.GreaterOrEqual(t, rank[got], rank[prev])
		prev = got
	}
	assert.Equal(t, StatusCompleted, prev)
}
