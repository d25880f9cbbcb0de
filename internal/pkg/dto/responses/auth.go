package responses

import "booking-service/internal/app/models"

type Signup struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Login struct {
	Success bool            `json:"success"`
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session"`
}

type CurrentUser struct {
	User *models.User `json:"user"`
}
