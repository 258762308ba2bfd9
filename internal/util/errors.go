package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidAward    = errors.New("experience award must be non-negative")
	ErrNoActiveAttempt = errors.New("no active quiz attempt")
	ErrMissionNotFound = errors.New("mission not found")
	ErrPlanetNotFound  = errors.New("planet not found")
	ErrNoSavedSystem   = errors.New("no saved solar system")
	ErrInvalidAvatar   = errors.New("avatar must be a PNG or JPEG image")
)
