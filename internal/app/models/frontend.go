package models

import "time"

type FrontendObject struct {
	Name        string
	ContentType string
	ModTime     time.Time
	Body        []byte
}
