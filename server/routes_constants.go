package server

// Route path constants, relative to the configured base path
const (
	RouteAuthLogin   = "/auth/login"
	RouteAuthRefresh = "/auth/refresh"
	RouteUsers       = "/users"
	RouteUser        = "/users/{id}"
)
