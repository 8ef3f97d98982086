package entity

import "time"

// Practitioner ficha del directorio público de practicantes.
// Region es un arreglo porque un practicante puede atender en varias regiones.
type Practitioner struct {
	ID        string
	Name      string
	Country   string
	Region    []string
	City      string
	Email     string
	Website   string
	Phone     string
	PhotoURL  string
	CreatedAt time.Time
}
