package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido do cliente. Aqui é entidade de referência:
// pedidos não são criados por este serviço, mas bloqueiam a exclusão do
// cliente via constraint de integridade referencial.
type Order struct {
	ID         int64
	Instant    time.Time
	CustomerID int64
	Total      decimal.Decimal
}
