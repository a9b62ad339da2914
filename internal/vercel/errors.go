package vercel

import "fmt"

// AuthError is returned when the API rejects the configured token (HTTP 401)
type AuthError struct{}

func (e AuthError) Error() string {
	return "authentication failed: the Vercel API rejected the token"
}

// NotFoundError is returned when no deployment matches the query, either
// because the API returned 404 or because the deployment list came back empty
type NotFoundError struct {
	Project string
}

func (e NotFoundError) Error() string {
	if e.Project != "" {
		return fmt.Sprintf("no deployments found for project %q", e.Project)
	}
	return "no deployments found for this team"
}

// APIError is returned for any other non-2xx response or transport failure
type APIError struct {
	Status int
	Cause  error
}

func (e APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("vercel api request failed with status %d: %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("vercel api request failed: %v", e.Cause)
}

func (e APIError) Unwrap() error {
	return e.Cause
}
