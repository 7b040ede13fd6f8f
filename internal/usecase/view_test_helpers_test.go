package usecase

import (
	"errors"
	"net/http"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// statusErr mimics a backend status error that can tell a 404 apart.
type statusErr struct {
	code int
}

func (e statusErr) Error() string  { return http.StatusText(e.code) }
func (e statusErr) NotFound() bool { return e.code == http.StatusNotFound }

var errBackendDown = errors.New("connection refused")
