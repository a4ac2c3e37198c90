package model

import "time"

// CartItem is a menu item placed in a customer's cart.
type CartItem struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	MenuItemID string    `json:"menuItemId"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}
