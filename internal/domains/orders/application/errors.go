package application

import (
	"errors"
	"fmt"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

// The order service error taxonomy. Every error returned by the service
// wraps exactly one of these sentinels so transport adapters can map it to a
// status code without parsing messages.
var (
	// ErrNotFound signals the order, or a resource it references, is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a malformed or business-rule-violating request.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrDuplicateOrderName signals an order-name uniqueness conflict.
	ErrDuplicateOrderName = errors.New("duplicate order name")
)

func notFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// mapError folds repository, client, and domain errors into the service
// taxonomy. Unclassified downstream rejections surface as invalid input
// rather than opaque failures.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDuplicateOrderName):
		return err
	case errors.Is(err, ports.ErrNotFound), errors.Is(err, ports.ErrResourceNotFound):
		return fmt.Errorf("%s: %w", err.Error(), ErrNotFound)
	case errors.Is(err, ports.ErrResourceRejected), errors.Is(err, ports.ErrVersionConflict):
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	case errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyOrderName),
		errors.Is(err, domain.ErrEmptyReference),
		errors.Is(err, domain.ErrNegativePrice):
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	default:
		return err
	}
}
