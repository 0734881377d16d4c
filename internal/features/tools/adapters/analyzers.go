package adapters

// Scenario analyzers shipped with the service. Each is self-describing and
// constructed without arguments; the analysis bodies are placeholders until
// the real integrations land, the contract is what the orchestrator
// depends on.

// NewPackageDamageAssessment analyzes reported package damage: product type,
// packaging material and the impact on the customer's experience.
func NewPackageDamageAssessment() *ScenarioTool {
	return NewScenarioTool(
		"package_damage_assessment",
		"Assess the extent of damage to a package, considering the type of product, packaging material, and the impact on the customer's experience",
		"Created for scenarios where a delivered package arrives damaged and remediation depends on the damage severity",
		nil,
	)
}

// NewRouteDisruptionAnalyzer analyzes traffic and weather disruptions along
// an active delivery route.
func NewRouteDisruptionAnalyzer() *ScenarioTool {
	return NewScenarioTool(
		"route_disruption_analyzer",
		"Analyze traffic, weather and road-closure disruptions along an active delivery route and rank alternatives",
		"Created for scenarios where a delivery is delayed en route and the driver needs a viable alternative",
		nil,
	)
}

// NewEvidenceAnalyzer weighs customer and driver statements in a dispute.
func NewEvidenceAnalyzer() *ScenarioTool {
	return NewScenarioTool(
		"evidence_analyzer",
		"Weigh collected customer and driver statements to determine fault in a delivery dispute",
		"Created for order disputes where fault must be determined before compensation is issued",
		nil,
	)
}

// NewRefundEligibilityChecker checks an order against instant-refund policy.
func NewRefundEligibilityChecker() *ScenarioTool {
	return NewScenarioTool(
		"refund_eligibility_checker",
		"Check an order against the instant-refund policy: order age, payment method and prior refund history",
		"Created for scenarios where the support workflow needs a fast refund eligibility answer",
		nil,
	)
}
