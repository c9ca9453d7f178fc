// Package util provides logging helpers and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure stages of an invocation. Every error
// surfaced by this tool unwraps to exactly one of these.
var (
	ErrCredentials         = errors.New("invalid credentials")
	ErrDeviceCommunication = errors.New("device communication failed")
	ErrInterfaceNotFound   = errors.New("interface not found")
	ErrDeviceRead          = errors.New("unable to read from device")
	ErrDeviceWrite         = errors.New("unable to write to device")
	ErrInvalidValue        = errors.New("invalid value")
)

// ReadError reports a failed SNMP GET with the OID that failed.
type ReadError struct {
	OID   string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.OID, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return ErrDeviceRead
}

// WriteError reports a failed SNMP SET with the OID that failed.
type WriteError struct {
	OID   string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write to device (%s): %v", e.OID, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return ErrDeviceWrite
}

// CommunicationError reports a transport failure during a discovery walk.
type CommunicationError struct {
	Host  string
	Cause error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("communicating with %s: %v", e.Host, e.Cause)
}

func (e *CommunicationError) Unwrap() error {
	return ErrDeviceCommunication
}

// CredentialError represents one or more problems with the auth bundle.
type CredentialError struct {
	Errors []string
}

func (e *CredentialError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid credentials: " + e.Errors[0]
	}
	return fmt.Sprintf("invalid credentials:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *CredentialError) Unwrap() error {
	return ErrCredentials
}

// CredentialBuilder accumulates credential validation failures.
type CredentialBuilder struct {
	errors []string
}

// Require adds a message if condition is false.
func (b *CredentialBuilder) Require(condition bool, message string) *CredentialBuilder {
	if !condition {
		b.errors = append(b.errors, message)
	}
	return b
}

// Addf adds a formatted message unconditionally.
func (b *CredentialBuilder) Addf(format string, args ...interface{}) *CredentialBuilder {
	b.errors = append(b.errors, fmt.Sprintf(format, args...))
	return b
}

// Build returns the credential error, or nil if nothing was recorded.
func (b *CredentialBuilder) Build() error {
	if len(b.errors) == 0 {
		return nil
	}
	return &CredentialError{Errors: b.errors}
}
