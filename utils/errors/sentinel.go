package errors

import "errors"

// Sentinel errors matched with errors.Is across layers.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrRateLimited       = errors.New("rate limited")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

func sentinelFor(code ErrorCode) error {
	switch code {
	case ErrCodeSourceUnavailable:
		return ErrSourceUnavailable
	case ErrCodeRateLimited:
		return ErrRateLimited
	case ErrCodeNotFound:
		return ErrNotFound
	case ErrCodeInvalidInput:
		return ErrInvalidInput
	case ErrCodeStore:
		return ErrStoreUnavailable
	default:
		return nil
	}
}

func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
