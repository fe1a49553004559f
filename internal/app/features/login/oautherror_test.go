// internal/app/features/login/oautherror_test.go
package login

import "testing"

func TestOAuthErrorMessage(t *testing.T) {
	if got := oauthErrorMessage(""); got != "" {
		t.Errorf("expected empty message for empty code, got %q", got)
	}
	if got := oauthErrorMessage("no_account"); got == "" {
		t.Error("expected a message for no_account")
	}
	if got := oauthErrorMessage("something_else"); got != "" {
		t.Errorf("expected empty message for unknown code, got %q", got)
	}
}
