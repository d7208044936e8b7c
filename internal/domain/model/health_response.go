package model

// ComponentHealth is the JSON shape of a single check inside a health
// response. Details and Error are omitted when the group's visibility
// policy hides them.
type ComponentHealth struct {
	Status  Status         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HealthResponse is the aggregate health of a group as rendered to
// probe callers. Components is only populated when the group's
// show-details policy resolves to visible for the current caller.
type HealthResponse struct {
	Status     Status                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentFromResult converts an evaluation result into its response shape.
func ComponentFromResult(result CheckResult) ComponentHealth {
	component := ComponentHealth{
		Status:  result.Status,
		Details: result.Details,
	}
	if result.Err != nil {
		component.Error = result.Err.Error()
	}
	return component
}
