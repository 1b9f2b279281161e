package services

import (
	"fmt"
	"strings"

	"migranthealth/models"
)

/*
* Case-insensitive substring match on the symptom text for fever and cough
* Refugees count crowded living conditions as an extra factor
* More than two factors is high risk, more than one is medium
 */
func AssessRisk(symptoms string, migrantType models.MigrantType) (models.RiskLevel, []string) {
	factors := []string{}
	lower := strings.ToLower(symptoms)
	if strings.Contains(lower, "fever") {
		factors = append(factors, "fever")
	}
	if strings.Contains(lower, "cough") {
		factors = append(factors, "respiratory symptoms")
	}
	if migrantType == models.MigrantRefugee {
		factors = append(factors, "crowded living conditions")
	}

	switch {
	case len(factors) > 2:
		return models.RiskHigh, factors
	case len(factors) > 1:
		return models.RiskMedium, factors
	}
	return models.RiskLow, factors
}

func PreDiagnosis(level models.RiskLevel) string {
	return fmt.Sprintf("Based on symptoms and risk factors: %s for infectious diseases. Immediate screening recommended.", level)
}
