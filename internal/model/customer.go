package model

// Customer represents a registered customer.
type Customer struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Email       string  `json:"email" db:"email"`
	Address     string  `json:"address" db:"address"`
	Phone       string  `json:"phone" db:"phone"`
	Observation *string `json:"observation,omitempty" db:"observation"`
}

// CustomerPayload is the client-supplied customer body. Only the fields
// declared here survive decoding; anything else the client sends is dropped.
type CustomerPayload struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Observation *string `json:"observation"`
}
