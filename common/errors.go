package common

import "github.com/cockroachdb/errors"

// ExitErr is returned by a state whose command ended the application.
var ExitErr = errors.New("exited")
