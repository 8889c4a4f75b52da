package entity

import "time"

// User representa un usuario autenticado. Todas las entidades del sistema
// quedan marcadas con su ID y los listados se filtran por él.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
