package entity

import (
	"strings"
	"time"
)

// Address dirección postal de un contacto del CRM.
type Address struct {
	Street      string
	City        string
	Subdivision string
	PostalCode  string
	Country     string
}

// Joined une las partes no vacías de la dirección con ", ".
func (a Address) Joined() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.Subdivision, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Contact contacto del CRM. El ID coincide con el ID del miembro cuando el contacto pertenece a uno.
type Contact struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Addresses []Address
	CreatedAt time.Time
}
