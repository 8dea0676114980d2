package core

import "errors"

// Validation errors (client input)
var (
	ErrFieldsRequired = errors.New("all fields are mandatory")                                                                                    // 400
	ErrWeakPassword   = errors.New("password needs to have at least 6 chars and must contain at least one number, one lowercase and one uppercase letter") // 400
)

// User errors. ErrUserExists deliberately does not say which field collided.
var (
	ErrUserExists   = errors.New("username and email need to be unique, either username or email is already used") // 409 Conflict
	ErrUserNotFound = errors.New("user not found")                                                                 // 404 Not Found
)

// Credential errors. Unknown-email and wrong-password stay distinguishable,
// matching the messages shown on the login form.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")                           // 401 Unauthorized
	ErrEmailNotRegistered = errors.New("email is not registered, try with other email") // 401
	ErrIncorrectPassword  = errors.New("incorrect password")                                  // 401
)

// Session errors
var (
	ErrInvalidToken    = errors.New("invalid session token")  // 401
	ErrSessionNotFound = errors.New("session not found")      // 401
	ErrSessionExpired  = errors.New("session expired")        // 401
	ErrUnauthorized    = errors.New("authentication required") // 401, guarded routes redirect instead
	ErrCacheNotFound   = errors.New("session not found in cache")
)

// Content errors
var (
	ErrPostNotFound = errors.New("post not found") // 404
)

// Config errors (server-side configuration)
var (
	ErrStorageRequired = errors.New("storage adapter is required")                 // 500
	ErrHTTPRequired    = errors.New("http adapter is required")                    // 500
	ErrUploadsRequired = errors.New("upload store is required to accept files") // 500
)
