package api

import "errors"

var errNotObject = errors.New("body is not a JSON object")
