package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyRsvpEmailSent = "rsvp:email_sent:"
	RedisKeyOAuthState    = "oauth:state:"
)

// Timeouts
const (
	DefaultTimeout = 10 * time.Second
)

// Event defaults
const (
	// DefaultSurveyPoints is awarded for a completed survey when the
	// event itself carries no points value.
	DefaultSurveyPoints = 10

	// DefaultEventDuration is assumed when an event has no explicit end time.
	DefaultEventDuration = time.Hour

	// CheckinCodeLength is the length of the nanoid embedded in event QR codes.
	CheckinCodeLength = 12
)

// Notification types
const (
	NotificationTypeEvent      = "event"
	NotificationTypeRsvp       = "rsvp"
	NotificationTypePoints     = "points"
	NotificationTypeAdmin      = "admin"
	NotificationTypeAttendance = "attendance"
	NotificationTypeTest       = "test"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Signup methods
const (
	SignupMethodPassword = "password"
	SignupMethodGoogle   = "google"
)

// Asynq task types
const (
	TaskTypeRsvpEmail = "rsvp:confirmation_email"
)
