package entity

// Holding is one listed entry of a ledger or basket
type Holding struct {
	Code     string
	Quantity int
}

// Contents is the snapshot shown after every transaction
type Contents struct {
	Basket []Holding
	Store  []Holding
}
