package dto

// ContactDTO contacto del CRM en respuestas de administración.
type ContactDTO struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Addresses []string `json:"addresses"`
}

// ContactsChunkResponse ventana de contactos.
type ContactsChunkResponse struct {
	Items      []ContactDTO `json:"items"`
	HasMore    bool         `json:"has_more"`
	TotalCount int          `json:"total_count"`
	Offset     int          `json:"offset"`
}
