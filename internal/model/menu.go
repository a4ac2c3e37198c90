package model

import "time"

// MenuItem represents a dish on the restaurant menu.
type MenuItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Recommendation is a chef-recommended dish shown on the landing page.
type Recommendation struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Review is a customer testimonial.
type Review struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
