// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks personal data in production logs
// ============================================================================

package utils

import (
	"log"
	"os"
	"regexp"
)

// IsProduction controls whether identifying data is masked in log output.
var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production" ||
	os.Getenv("ENV") == "production"

var uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// MaskID keeps the first 8 characters of an identifier.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// MaskEmail hides the whole address.
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// MaskPath shortens any UUID segments of a request path.
func MaskPath(path string) string {
	if !IsProduction {
		return path
	}
	return uuidRegex.ReplaceAllStringFunc(path, func(id string) string {
		if len(id) > 8 {
			return id[:8] + "..."
		}
		return "***"
	})
}

// LogAuthAction logs an authentication event without leaking the address in
// production.
func LogAuthAction(action string, email string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	log.Printf("[Auth] %s - Email: %s Status: %s", action, MaskEmail(email), status)
}

// LogModuleAction logs a module CRUD event.
func LogModuleAction(action string, moduleID string, userID string) {
	log.Printf("[Module] %s - Module: %s User: %s", action, MaskID(moduleID), MaskID(userID))
}

// LogWebSocket logs a websocket session event.
func LogWebSocket(action string, userID string) {
	log.Printf("[WS] %s - User: %s", action, MaskID(userID))
}
