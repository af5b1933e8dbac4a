package entity

// Address dirección postal usada en órdenes, entregas y perfil.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}
