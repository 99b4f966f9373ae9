package contactkit

// Request is one value to validate.
type Request struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	// Region is an ISO 3166 code for phone requests. Empty uses
	// Config.DefaultRegion.
	Region string `json:"region,omitempty"`
	// Locale selects the message language. Empty uses Config.Locale.
	Locale string `json:"locale,omitempty"`
}
