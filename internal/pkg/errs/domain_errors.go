package errs

import "errors"

// Sentinel errors shared across the usecase and infra layers
var (
	// Owner / admin errors
	ErrOwnerNotFound = errors.New("owner not found")
	ErrOwnerInactive = errors.New("owner inactive")

	// Catalog errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryInactive   = errors.New("category inactive")
	ErrProductUnavailable = errors.New("no product unit available")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Payment errors
	ErrUnknownProvider  = errors.New("unknown payment provider")
	ErrAmountNotOffered = errors.New("amount is not a configured tier")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
