package entity

// Incident mirrors the ServiceNow incident fields the dashboard consumes.
// The fixture list is immutable; lookups are by Number.
type Incident struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Created     string `json:"created"`
}
