package entity

// Client cliente de la lavandería (tabla cliente).
type Client struct {
	ID    int64
	Name  string
	Phone string
}

// Branch sucursal del cliente (tabla sucursal).
type Branch struct {
	ID      int64
	Name    string
	Address string
}

// ClientBranch fila de la tabla de asociación sucursal_cliente.
type ClientBranch struct {
	ClientID int64
	BranchID int64
}
