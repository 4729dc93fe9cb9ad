package animals

import "errors"

var (
	ErrAnimalNotFound = errors.New("animal not found")
	ErrInvalidSex     = errors.New("invalid sex")
	ErrInvalidStatus  = errors.New("invalid health status")
	ErrInvalidWeight  = errors.New("weight must be positive")
)
