package entity

import "time"

// User usuario de la API; pertenece a una Company y su rol define qué puede hacer con las QR-facturas.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, contable, lector
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
