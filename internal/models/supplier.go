package models

// Supplier represents a supplier entity in the logistics system.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}
