package responses

type Success struct {
	Success bool `json:"success"`
}

type Health struct {
	Status string `json:"status"`
}
