package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownAssociation = errors.New("unknown association")
)
