package handlers

import (
	"photo-portfolio/internal/models"
)

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

type PhotosResponse struct {
	Photos []models.PhotoItem `json:"photos"`
}

type PhotoResponse struct {
	Photo models.PhotoItem `json:"photo"`
}

type LoginAttemptsResponse struct {
	Attempts []*models.LoginAttempt `json:"attempts"`
}

type loginRequest struct {
	Password string `json:"password"`
}

// photoUpdateRequest is the body of PUT /api/admin/photos/{slug}. Absent fields are left unchanged.
type photoUpdateRequest struct {
	Title       *string  `json:"title"`
	Date        *string  `json:"date"`
	Type        *string  `json:"type"`
	Camera      *string  `json:"camera"`
	Lens        *string  `json:"lens"`
	Aperture    *string  `json:"aperture"`
	Exposure    *string  `json:"exposure"`
	FocalLength *string  `json:"focalLength"`
	ISO         *string  `json:"iso"`
	Make        *string  `json:"make"`
	Tags        []string `json:"tags"`
}
