// Package internal holds shared application metadata.
package internal

// Version is the application version.
const Version = "0.1.0"
