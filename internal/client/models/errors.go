package models

import "errors"

var (
	ErrEmptyNote     = errors.New("Key and value cannot be empty")
	ErrUnknownFormat = errors.New("unknown format type")
	ErrEmptyUpload   = errors.New("upload has no content")
)
