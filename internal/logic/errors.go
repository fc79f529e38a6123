package logic

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrSeasonNotFound = errors.New("season not found")
)
