package http

// messageResponse is the single-message error body, e.g. access denial and
// duplicate usernames.
type messageResponse struct {
	Message string `json:"message"`
}

// errorsResponse lists every validation violation from one request.
type errorsResponse struct {
	Errors []string `json:"errors"`
}

// currentUserResponse exposes exactly the authenticated user's id, full
// name, and username. Field casing matches the public API contract.
type currentUserResponse struct {
	ID       int64  `json:"Id"`
	Name     string `json:"Name"`
	Username string `json:"Username"`
}

type logoutSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type logoutErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *healthChecks `json:"checks,omitempty"`
}

type healthChecks struct {
	Database string `json:"database"`
}
