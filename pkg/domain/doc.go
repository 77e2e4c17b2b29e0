// Package domain contains the core domain entities used by the application.
// These types represent the business concepts (documents, lint reports,
// interview questions) and are intentionally free of infrastructure concerns
// so they can be shared across packages.
package domain
