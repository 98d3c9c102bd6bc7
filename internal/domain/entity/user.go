package entity

import "time"

// User representa una identidad autenticable del sistema.
// El perfil y las sociedades se relacionan por FK; no hay grafo en memoria.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}

// Tipos de usuario del perfil.
const (
	UserTypeBusiness = "BUSINESS"
)

// Profile metadatos de presentación de un User (relación 1:1, creado en el registro).
type Profile struct {
	ID                string // mismo valor que User.ID
	FullName          string
	AvatarURL         string
	PhoneNumber       string
	UserType          string // BUSINESS por defecto
	PreferredLanguage string // "en" por defecto
}
