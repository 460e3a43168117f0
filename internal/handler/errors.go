package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrInvalidBody indicates that the request body is not the expected JSON.
var ErrInvalidBody = fiber.NewError(fiber.StatusBadRequest, "invalid request body")

// ErrCallerRequired is returned when the X-Caller header is missing.
var ErrCallerRequired = fiber.NewError(fiber.StatusBadRequest, "X-Caller header is required")

// ErrInvalidCaller is returned when X-Caller is not a hex address.
var ErrInvalidCaller = fiber.NewError(fiber.StatusBadRequest, "invalid X-Caller address")

// ErrInvalidPoolID is returned when the pool id is not a 32-byte hex string.
var ErrInvalidPoolID = fiber.NewError(fiber.StatusBadRequest, "invalid pool id")

// ErrInvalidPairAddress is returned when the pair address cannot be parsed.
var ErrInvalidPairAddress = fiber.NewError(fiber.StatusBadRequest, "invalid pair address")

// ErrInvalidAmountFormat is returned when an amount is not a base-10 integer
// that fits in 64 bits.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount format")

// ErrZeroAmountBadRequest maps a zero swap or withdrawal amount to a 400 error.
var ErrZeroAmountBadRequest = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrInvalidSideBadRequest maps an unknown asset side to a 400 error.
var ErrInvalidSideBadRequest = fiber.NewError(fiber.StatusBadRequest, "side must be \"a\" or \"b\"")

// ErrEmptyReservesBadRequest maps empty-reserve pool state to a 400 error.
var ErrEmptyReservesBadRequest = fiber.NewError(fiber.StatusBadRequest, "pool has insufficient reserves")

// ErrSlippageConflict is returned when the net output is below min_out.
var ErrSlippageConflict = fiber.NewError(fiber.StatusConflict, "output below min_out")

// ErrUnauthorizedForbidden is returned when a non-owner touches owner-only
// operations.
var ErrUnauthorizedForbidden = fiber.NewError(fiber.StatusForbidden, "caller is not the pool owner")

// ErrInsufficientFeeBalanceUnprocessable maps an over-withdrawal to a 422 error.
var ErrInsufficientFeeBalanceUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "insufficient admin fee balance")

// ErrPoolUnderflowUnprocessable maps a reserve underflow to a 422 error.
var ErrPoolUnderflowUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "pool reserve would underflow")

// ErrReserveOverflowUnprocessable maps a reserve overflow to a 422 error.
var ErrReserveOverflowUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "pool reserve would overflow")

// ErrPoolNotFound maps an unknown pool id to a 404 error.
var ErrPoolNotFound = fiber.NewError(fiber.StatusNotFound, "pool not found")

// ErrSeedingUnavailable is returned when no RPC endpoint is configured.
var ErrSeedingUnavailable = fiber.NewError(fiber.StatusServiceUnavailable, "pool seeding is not configured")

// ErrPairReserveTooLarge maps an oversized on-chain reserve to a 422 error.
var ErrPairReserveTooLarge = fiber.NewError(fiber.StatusUnprocessableEntity, "pair reserves do not fit in 64 bits")

// ErrInternal signals a generic server-side failure.
var ErrInternal = fiber.NewError(fiber.StatusInternalServerError, "internal error")
