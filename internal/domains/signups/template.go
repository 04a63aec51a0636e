package signups

import (
	"errors"
	"strings"
)

// UserState is the outcome of the signup workflow for the user involved.
// It decides which confirmation paragraph the user receives.
type UserState string

const (
	// StateDefault means a brand new user and password were created.
	StateDefault UserState = "default"
	// StateExisting means an existing user was given access to the new project.
	StateExisting UserState = "existing"
	// StateDisabled means a previously disabled user was re-enabled.
	StateDisabled UserState = "disabled"
)

// ErrInvalidUserState is returned when a state outside the three
// recognized values reaches the renderer.
var ErrInvalidUserState = errors.New("invalid user state")

// ParseUserState validates a wire value against the closed set.
func ParseUserState(s string) (UserState, error) {
	switch UserState(s) {
	case StateDefault, StateExisting, StateDisabled:
		return UserState(s), nil
	}
	return "", ErrInvalidUserState
}

// ConfirmationSubject is the subject line for the signup-completed email.
const ConfirmationSubject = "Openstack signup completed"

const (
	leadDefault  = "This email is to confirm that your Openstack signup has been completed and your new user and password have now been set up."
	leadExisting = "This email is to confirm that your Openstack signup has been completed and your existing user has access to your new project."
	leadDisabled = "This email is to confirm that your Openstack signup has been completed and your existing user has been re-enabled and given access to your new project."

	closingSecurity = "If you did not do this yourself, please get in touch with your systems administrator to report suspicious activity and secure your account."
	closingSignoff  = "Kind regards,\nThe Openstack team"
)

// RenderConfirmation builds the plain-text confirmation email body for the
// given state: one lead paragraph selected by the state, then the two fixed
// closing paragraphs. Unknown states return ErrInvalidUserState rather than
// falling through to a body with no lead paragraph.
func RenderConfirmation(state UserState) (string, error) {
	var lead string
	switch state {
	case StateDefault:
		lead = leadDefault
	case StateExisting:
		lead = leadExisting
	case StateDisabled:
		lead = leadDisabled
	default:
		return "", ErrInvalidUserState
	}

	return joinParagraphs(lead, closingSecurity, closingSignoff), nil
}

// joinParagraphs composes paragraphs separated by a single blank line,
// dropping empty ones, with a trailing newline and no surrounding blank
// lines.
func joinParagraphs(paragraphs ...string) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// TokenSubject is the subject line for the token submission email.
const TokenSubject = "Openstack signup token"

const tokenTemplate = `Hello {username},

Your Openstack signup has been approved. Please submit your password using the token below to finish setting up your account:

{token}

This token will expire 24 hours after it was issued.`

// RenderTokenEmail fills the token email template for a signup that still
// needs the user to set a password.
// Supported variables: {username}, {token}
func RenderTokenEmail(username, token string) string {
	rendered := tokenTemplate

	rendered = strings.ReplaceAll(rendered, "{username}", username)
	rendered = strings.ReplaceAll(rendered, "{token}", token)

	return joinParagraphs(rendered, closingSignoff)
}
