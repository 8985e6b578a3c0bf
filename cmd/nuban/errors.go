package main

import "errors"

// errInvalidAccount makes `nuban validate` exit non-zero when the check
// digit does not match.
var errInvalidAccount = errors.New("check digit mismatch")
