package renter

import "errors"

var ErrRenterNotFound = errors.New("renter not found")
