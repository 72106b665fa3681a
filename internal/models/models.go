package models

import (
	"time"

	"github.com/lib/pq"
)

const RoleAdmin = "admin"

// Project status values.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusPlanned    = "planned"
)

type User struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Name         string     `json:"name" db:"name"`
	Role         string     `json:"role" db:"role"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	OTP          *string    `json:"-" db:"otp"`
	OTPExpires   *time.Time `json:"-" db:"otp_expires"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Owner is the resolved createdBy reference on content items. It is nil
// when the owning account no longer exists.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Service struct {
	ID                string         `json:"id" db:"id"`
	Title             string         `json:"title" db:"title"`
	Description       string         `json:"description" db:"description"`
	Image             string         `json:"image" db:"image"`
	Images            pq.StringArray `json:"images" db:"images"`
	DetailDescription string         `json:"detailDescription" db:"detail_description"`
	IsActive          bool           `json:"isActive" db:"is_active"`
	CreatedByID       string         `json:"-" db:"created_by"`
	CreatedBy         *Owner         `json:"createdBy" db:"-"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" db:"updated_at"`
}

type Project struct {
	ID                string         `json:"id" db:"id"`
	Title             string         `json:"title" db:"title"`
	Description       string         `json:"description" db:"description"`
	Category          string         `json:"category" db:"category"`
	Status            string         `json:"status" db:"status"`
	Location          string         `json:"location" db:"location"`
	Client            string         `json:"client" db:"client"`
	Image             string         `json:"image" db:"image"`
	Images            pq.StringArray `json:"images" db:"images"`
	DetailDescription string         `json:"detailDescription" db:"detail_description"`
	StartDate         time.Time      `json:"startDate" db:"start_date"`
	EndDate           *time.Time     `json:"endDate" db:"end_date"`
	IsActive          bool           `json:"isActive" db:"is_active"`
	CreatedByID       string         `json:"-" db:"created_by"`
	CreatedBy         *Owner         `json:"createdBy" db:"-"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" db:"updated_at"`
}
