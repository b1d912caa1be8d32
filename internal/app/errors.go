package app

import "errors"

var (
	ErrStoreOpen            = errors.New("can't open store")
	ErrAppStartup           = errors.New("app startup error")
	ErrAppShutdownNormal    = errors.New("app shutdown normal")
	ErrAppShutdownWithError = errors.New("app shutdown with error")
)
