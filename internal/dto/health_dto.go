package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Uptime   string `json:"uptime"`
}
