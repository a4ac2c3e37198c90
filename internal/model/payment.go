package model

import "time"

// Payment records a completed checkout. It is never modified after insertion.
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemId"`
	Status        string    `json:"status"`
}

// PaymentIntentRequest is the payload of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the client secret back to the checkout form.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CheckoutResult is the outcome of recording a payment and clearing the cart.
type CheckoutResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteRes     DeleteResult `json:"deleteRes"`
}
