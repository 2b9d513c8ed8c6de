package entity

// Store una tienda física de la cadena.
type Store struct {
	ID   int
	Name string
}
