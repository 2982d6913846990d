package entity

import "time"

// Client representa un cliente identificado por CI/NIT (único, 6 a 20 caracteres).
type Client struct {
	ID        string
	CINIT     string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
