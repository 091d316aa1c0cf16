package model

// Names of the built-in Scrum risks. They double as keys of the mitigation table.
const (
	RiskUnrealisticEstimates    = "Unrealistic time estimates"
	RiskLackOfTechnicalSkills   = "Lack of technical skills in the team"
	RiskTechnicalDebt           = "Accumulated technical debt"
	RiskPoorBacklog             = "Poor backlog management"
	RiskOutdatedDocumentation   = "Documentation does not reflect the code or does not exist"
	RiskLackOfTesting           = "Lack of automated testing"
	RiskIntegrationDifficulties = "Difficult integration with other systems"
	RiskIneffectiveMeetings     = "Ineffective Scrum meetings"
	RiskMicromanagement         = "Productivity loss due to micromanagement"
	RiskCustomerDisengagement   = "Customer does not engage in user story creation"
)

// DefaultCatalog returns the built-in risk catalog. A new slice is returned on
// every call.
func DefaultCatalog() []Risk {
	return []Risk{
		NewRisk(RiskUnrealisticEstimates, 3, 2),
		NewRisk(RiskLackOfTechnicalSkills, 2, 3),
		NewRisk(RiskTechnicalDebt, 2, 4),
		NewRisk(RiskPoorBacklog, 3, 5),
		NewRisk(RiskOutdatedDocumentation, 5, 2),
		NewRisk(RiskLackOfTesting, 3, 5),
		NewRisk(RiskIntegrationDifficulties, 2, 3),
		NewRisk(RiskIneffectiveMeetings, 3, 2),
		NewRisk(RiskMicromanagement, 4, 5),
		NewRisk(RiskCustomerDisengagement, 3, 5),
	}
}
