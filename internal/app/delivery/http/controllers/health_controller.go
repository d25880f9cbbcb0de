package controllers

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.SetNoCacheHeaders(w)
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{Status: constvars.HealthStatusOK})
}
