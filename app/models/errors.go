package models

import "errors"

// Sentinel errors shared by repositories, services and controllers.
// Repositories translate driver errors (mongo.ErrNoDocuments, duplicate key)
// into these so nothing above the persistence layer imports the driver.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
