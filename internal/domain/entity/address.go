package entity

// Address representa um endereço de entrega de um cliente.
// CityID referencia a cidade apenas por id; os demais campos da cidade
// são resolvidos pela camada de persistência quando necessário.
type Address struct {
	ID         int64
	Street     string
	Number     string
	Complement string // opcional
	District   string
	ZipCode    string
	CustomerID int64
	CityID     int64
}
