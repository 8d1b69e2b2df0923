package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StateResponse saída de um estado.
type StateResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityResponse saída de uma cidade.
type CityResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StateID int64  `json:"state_id"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderResponse saída de um pedido (referência).
type OrderResponse struct {
	ID         int64           `json:"id"`
	Instant    time.Time       `json:"instant"`
	CustomerID int64           `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
}
