package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/accounts/42", "/api/v1/accounts/:id"},
		{"/api/v1/accounts/42/deposits", "/api/v1/accounts/:id/deposits"},
		{"/api/v1/accounts/42/savings-goal", "/api/v1/accounts/:id/savings-goal"},
		{"/api/v1/loans/10", "/api/v1/loans/:id"},
		{"/api/v1/loans/10/payments", "/api/v1/loans/:id/payments"},
		{"/api/v1/accounts/", "/api/v1/accounts/"},
		{"/api/v1/accounts", "/api/v1/accounts"},
		{"/api/v1/transfers", "/api/v1/transfers"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
