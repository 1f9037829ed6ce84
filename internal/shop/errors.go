package shop

import (
	"errors"
	"fmt"
)

var (
	// ErrBonusAlreadyApplied indicates the session has already claimed
	// its one-time bonus.
	ErrBonusAlreadyApplied = errors.New("shop.bonus_already_applied")

	// ErrInvalidBonusAmount indicates the bonus amount did not parse as
	// a decimal number.
	ErrInvalidBonusAmount = errors.New("shop.invalid_bonus_amount")

	// ErrBonusOutOfRange indicates the bonus amount lies outside [1, 999].
	ErrBonusOutOfRange = errors.New("shop.bonus_out_of_range")

	// ErrUnknownProduct indicates an order line references a product id
	// that is not in the catalog.
	ErrUnknownProduct = errors.New("shop.unknown_product")

	// ErrInvalidQuantity indicates an order-line quantity is not positive.
	ErrInvalidQuantity = errors.New("shop.invalid_quantity")

	// ErrInsufficientBalance indicates the session balance does not
	// cover the order total.
	ErrInsufficientBalance = errors.New("shop.insufficient_balance")
)

// UnknownProductError reports which product id was not found. It matches
// ErrUnknownProduct under errors.Is.
type UnknownProductError struct {
	ID int
}

func (e UnknownProductError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

func (e UnknownProductError) Is(target error) bool {
	return target == ErrUnknownProduct
}
