package signups

import (
	"errors"
	"strings"
	"testing"
)

// TestRenderConfirmation_Default tests the body for a newly created user
func TestRenderConfirmation_Default(t *testing.T) {
	body, err := RenderConfirmation(StateDefault)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}

	wantLead := "This email is to confirm that your Openstack signup has been completed and your new user and password have now been set up."
	if !strings.HasPrefix(body, wantLead) {
		t.Errorf("body should start with %q, got %q", wantLead, body)
	}
	if !strings.HasSuffix(body, "Kind regards,\nThe Openstack team\n") {
		t.Errorf("body should end with sign-off, got %q", body)
	}
}

// TestRenderConfirmation_Existing tests the body for an existing user
func TestRenderConfirmation_Existing(t *testing.T) {
	body, err := RenderConfirmation(StateExisting)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}

	wantLead := "This email is to confirm that your Openstack signup has been completed and your existing user has access to your new project."
	if !strings.Contains(body, wantLead) {
		t.Errorf("body should contain %q, got %q", wantLead, body)
	}
}

// TestRenderConfirmation_Disabled tests the body for a re-enabled user
func TestRenderConfirmation_Disabled(t *testing.T) {
	body, err := RenderConfirmation(StateDisabled)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}

	if !strings.Contains(body, "has been re-enabled and given access to your new project.") {
		t.Errorf("body should mention re-enabled user, got %q", body)
	}
}

// TestRenderConfirmation_ExactBody pins the full composed body for one state
func TestRenderConfirmation_ExactBody(t *testing.T) {
	body, err := RenderConfirmation(StateDefault)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}

	expected := "This email is to confirm that your Openstack signup has been completed and your new user and password have now been set up.\n\n" +
		"If you did not do this yourself, please get in touch with your systems administrator to report suspicious activity and secure your account.\n\n" +
		"Kind regards,\nThe Openstack team\n"

	if body != expected {
		t.Errorf("RenderConfirmation() = %q, want %q", body, expected)
	}
}

// TestRenderConfirmation_ClosingParagraphs verifies the two fixed closing
// paragraphs are present for every recognized state
func TestRenderConfirmation_ClosingParagraphs(t *testing.T) {
	states := []UserState{StateDefault, StateExisting, StateDisabled}

	for _, state := range states {
		body, err := RenderConfirmation(state)
		if err != nil {
			t.Fatalf("RenderConfirmation(%q) error = %v, want nil", state, err)
		}

		if !strings.Contains(body, "If you did not do this yourself, please get in touch with your systems administrator to report suspicious activity and secure your account.") {
			t.Errorf("state %q: body missing security paragraph: %q", state, body)
		}
		if !strings.Contains(body, "Kind regards,\nThe Openstack team") {
			t.Errorf("state %q: body missing sign-off: %q", state, body)
		}
	}
}

// TestRenderConfirmation_Deterministic verifies repeated renders are
// byte-identical
func TestRenderConfirmation_Deterministic(t *testing.T) {
	first, err := RenderConfirmation(StateExisting)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}
	second, err := RenderConfirmation(StateExisting)
	if err != nil {
		t.Fatalf("RenderConfirmation() error = %v, want nil", err)
	}

	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}

// TestRenderConfirmation_UnknownState verifies unknown states are rejected
// rather than rendering a body with no lead paragraph
func TestRenderConfirmation_UnknownState(t *testing.T) {
	body, err := RenderConfirmation(UserState("unknown"))
	if !errors.Is(err, ErrInvalidUserState) {
		t.Errorf("RenderConfirmation() error = %v, want ErrInvalidUserState", err)
	}
	if body != "" {
		t.Errorf("body should be empty on error, got %q", body)
	}
}

// TestRenderConfirmation_NoSurroundingBlankLines verifies spaceless
// normalization: no leading whitespace and a single trailing newline
func TestRenderConfirmation_NoSurroundingBlankLines(t *testing.T) {
	for _, state := range []UserState{StateDefault, StateExisting, StateDisabled} {
		body, err := RenderConfirmation(state)
		if err != nil {
			t.Fatalf("RenderConfirmation(%q) error = %v, want nil", state, err)
		}

		if strings.TrimLeft(body, " \n\t") != body {
			t.Errorf("state %q: body has leading whitespace: %q", state, body)
		}
		if !strings.HasSuffix(body, "\n") || strings.HasSuffix(body, "\n\n") {
			t.Errorf("state %q: body should end with exactly one newline: %q", state, body)
		}
		if strings.Contains(body, "\n\n\n") {
			t.Errorf("state %q: body has collapsed blank lines: %q", state, body)
		}
	}
}

// TestParseUserState_Recognized tests the three wire values
func TestParseUserState_Recognized(t *testing.T) {
	cases := map[string]UserState{
		"default":  StateDefault,
		"existing": StateExisting,
		"disabled": StateDisabled,
	}

	for input, want := range cases {
		got, err := ParseUserState(input)
		if err != nil {
			t.Errorf("ParseUserState(%q) error = %v, want nil", input, err)
		}
		if got != want {
			t.Errorf("ParseUserState(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestParseUserState_Rejected tests values outside the closed set
func TestParseUserState_Rejected(t *testing.T) {
	for _, input := range []string{"", "unknown", "Default", "EXISTING", "disabled "} {
		if _, err := ParseUserState(input); !errors.Is(err, ErrInvalidUserState) {
			t.Errorf("ParseUserState(%q) error = %v, want ErrInvalidUserState", input, err)
		}
	}
}

// TestRenderTokenEmail tests token template substitution
func TestRenderTokenEmail(t *testing.T) {
	body := RenderTokenEmail("jdoe", "abc123")

	if !strings.Contains(body, "Hello jdoe,") {
		t.Errorf("body should greet the user, got %q", body)
	}
	if !strings.Contains(body, "abc123") {
		t.Errorf("body should contain the token, got %q", body)
	}
	if strings.Contains(body, "{username}") || strings.Contains(body, "{token}") {
		t.Errorf("body has unexpanded placeholders: %q", body)
	}
	if !strings.HasSuffix(body, "Kind regards,\nThe Openstack team\n") {
		t.Errorf("body should end with sign-off, got %q", body)
	}
}

// TestRenderTokenEmail_EmptyValues tests substitution with empty inputs
func TestRenderTokenEmail_EmptyValues(t *testing.T) {
	body := RenderTokenEmail("", "")

	if strings.Contains(body, "{username}") || strings.Contains(body, "{token}") {
		t.Errorf("body has unexpanded placeholders: %q", body)
	}
	if !strings.Contains(body, "Hello ,") {
		t.Errorf("empty username should be substituted as empty string, got %q", body)
	}
}
