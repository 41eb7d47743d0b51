package trips

// APIKeys holds the per-request credentials for the model provider, the
// crawling tool, and optionally the photo service. Keys arrive with each
// request and are never stored.
type APIKeys struct {
	Anthropic  string `json:"anthropic"`
	Firecrawl  string `json:"firecrawl"`
	GoogleMaps string `json:"googleMaps,omitempty"`
}

// PlanRequest is the body of a plan-trip call.
type PlanRequest struct {
	UserInput string  `json:"userInput"`
	APIKeys   APIKeys `json:"apiKeys"`
}

// Validate checks that the request carries everything planning needs. The
// Google Maps key is optional; without it enrichment is skipped.
func (r *PlanRequest) Validate() error {
	if r.UserInput == "" || r.APIKeys.Anthropic == "" || r.APIKeys.Firecrawl == "" {
		return ErrValidation
	}
	return nil
}
