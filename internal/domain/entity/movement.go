package entity

// Movement represents a request to move a quantity of one item code
type Movement struct {
	Code     string
	Quantity int
}

// Validate validates the movement
func (m Movement) Validate() error {
	if m.Code == "" {
		return ErrEmptyCode
	}
	if m.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	return nil
}
