package services

import (
	"testing"

	"migranthealth/models"

	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name        string
		symptoms    string
		migrantType models.MigrantType
		want        models.RiskLevel
		factors     int
	}{
		{"all three factors", "high fever and a dry cough", models.MigrantRefugee, models.RiskHigh, 3},
		{"two factors", "fever and cough", models.MigrantWorker, models.RiskMedium, 2},
		{"one factor", "mild fever", models.MigrantSeasonal, models.RiskLow, 1},
		{"no factors", "sore ankle", models.MigrantOther, models.RiskLow, 0},
		{"case insensitive match", "FEVER and COUGHING fits", models.MigrantAsylumSeeker, models.RiskMedium, 2},
		{"refugee alone", "feeling tired", models.MigrantRefugee, models.RiskLow, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, factors := AssessRisk(tt.symptoms, tt.migrantType)
			assert.Equal(t, tt.want, level)
			assert.Len(t, factors, tt.factors)
		})
	}
}

func TestPreDiagnosis(t *testing.T) {
	got := PreDiagnosis(models.RiskHigh)

	assert.Equal(t, "Based on symptoms and risk factors: High Risk for infectious diseases. Immediate screening recommended.", got)
}
