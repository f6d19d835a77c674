package db

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal database error")
)

//go:generate mockgen -destination=../mocks/mock_db.go -package=mock_db github.com/sidereusnuntius/fedoraconnector/internal/db DB

// DB is the record store used by the application. Its implementations must translate driver errors into the
// errors declared in this package.
type DB interface {
	Servers
	Datastreams
	Metadata
}
