package repository

import (
	"math"

	"tally.com/internal/domain/entity"
)

// holdings is a code -> quantity mapping that remembers the order in
// which codes were first seen. Callers hold the owning repository's lock.
type holdings struct {
	quantities map[string]int
	order      []string
}

func newHoldings() *holdings {
	return &holdings{
		quantities: make(map[string]int),
		order:      make([]string, 0),
	}
}

func (h *holdings) get(code string) (int, bool) {
	quantity, ok := h.quantities[code]
	return quantity, ok
}

// room fails when adding quantity to code would overflow an int
func (h *holdings) room(code string, quantity int) error {
	if quantity > math.MaxInt-h.quantities[code] {
		return entity.ErrQuantityOverflow
	}
	return nil
}

// add increments the quantity for code, creating the entry at 0 if absent.
// Nothing changes when the result would overflow.
func (h *holdings) add(code string, quantity int) (int, error) {
	if err := h.room(code, quantity); err != nil {
		return h.quantities[code], err
	}
	if _, ok := h.quantities[code]; !ok {
		h.order = append(h.order, code)
	}
	h.quantities[code] += quantity
	return h.quantities[code], nil
}

// take decrements an existing entry. Existence is checked before sufficiency.
func (h *holdings) take(code string, quantity int) (int, error) {
	remaining, ok := h.quantities[code]
	if !ok {
		return 0, entity.UnknownCode(code)
	}
	if remaining < quantity {
		return remaining, &entity.InsufficientStockError{
			Code:      code,
			Remaining: remaining,
			Requested: quantity,
		}
	}
	h.quantities[code] = remaining - quantity
	return h.quantities[code], nil
}

func (h *holdings) list() []entity.Holding {
	list := make([]entity.Holding, 0, len(h.order))
	for _, code := range h.order {
		list = append(list, entity.Holding{Code: code, Quantity: h.quantities[code]})
	}
	return list
}
