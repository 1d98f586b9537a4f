package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Provider string `json:"provider"`
}
