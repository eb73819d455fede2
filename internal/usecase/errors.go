package usecase

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInternal               = errors.New("internal error")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrJobNotFound            = errors.New("job not found")
	ErrProfileNotFound        = errors.New("candidate profile not found")
	ErrAgentSearchUnavailable = errors.New("agent search unavailable")
)
