package entity

// City entidade de referência (somente leitura neste serviço).
type City struct {
	ID      int64
	Name    string
	StateID int64
}

// State entidade de referência (somente leitura neste serviço).
type State struct {
	ID   int64
	Name string
}
