package repository

import "time"

// Request DTOs shared between handlers and services. Validation tags are
// enforced by the handlers before any service call.

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
}

type CreateServiceRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	Description       string   `json:"description" validate:"required,max=1000"`
	Image             string   `json:"image"`
	DetailDescription string   `json:"detailDescription" validate:"max=2000"`
	Images            []string `json:"images"`
}

// UpdateServiceRequest distinguishes omitted fields (nil pointers keep the
// stored value) from the always-required title/description. The primary
// image falls back to the stored value only when empty.
type UpdateServiceRequest struct {
	Title             string    `json:"title" validate:"required,max=200"`
	Description       string    `json:"description" validate:"required,max=1000"`
	Image             string    `json:"image"`
	DetailDescription *string   `json:"detailDescription" validate:"omitempty,max=2000"`
	Images            *[]string `json:"images"`
}

type CreateProjectRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description" validate:"required,max=1000"`
	Category          string     `json:"category" validate:"required,max=100"`
	Image             string     `json:"image"`
	DetailDescription string     `json:"detailDescription" validate:"max=2000"`
	Location          string     `json:"location" validate:"max=200"`
	Client            string     `json:"client" validate:"max=200"`
	Images            []string   `json:"images"`
	Status            string     `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
}

type UpdateProjectRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description" validate:"required,max=1000"`
	Category          string     `json:"category" validate:"required,max=100"`
	Image             string     `json:"image"`
	DetailDescription *string    `json:"detailDescription" validate:"omitempty,max=2000"`
	Location          *string    `json:"location" validate:"omitempty,max=200"`
	Client            *string    `json:"client" validate:"omitempty,max=200"`
	Images            *[]string  `json:"images"`
	Status            string     `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
