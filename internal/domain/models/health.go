package models

// ServiceName identifies this backend in health responses.
const ServiceName = "saros-analytics-backend"

// HealthStatus is the fixed two-entry health payload.
type HealthStatus map[string]string

func NewHealthStatus() HealthStatus {
	return HealthStatus{
		"status":  "healthy",
		"service": ServiceName,
	}
}
