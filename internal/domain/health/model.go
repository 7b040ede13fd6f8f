package health

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Status is the backend health report.
type Status struct {
	Status   string
	Version  string
	Database string
	Error    string
}

func (s Status) Healthy() bool {
	return s.Status == StatusHealthy
}

// Unhealthy is reported when the health endpoint cannot be reached.
func Unhealthy(reason string) Status {
	return Status{Status: StatusUnhealthy, Error: reason}
}
