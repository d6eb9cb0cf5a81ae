package config

import "errors"

var ErrUnknownParam = errors.New("config: unknown parameter")
