package fundapi

import "fmt"

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend returned status %d", e.Method, e.Path, e.StatusCode)
}
