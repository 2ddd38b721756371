package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/opsdesk/console/internal/types"
)

func TestCategorize(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   ErrorCategory
	}{
		{400, Irrecoverable},
		{401, Irrecoverable},
		{403, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{429, Recoverable},
		{500, Recoverable},
		{502, Recoverable},
		{503, Recoverable},
	}
	for _, tc := range cases {
		te := NewHTTPError("op", tc.status, nil)
		if te.Category != tc.want {
			t.Errorf("status %d categorized %s, want %s", tc.status, te.Category, tc.want)
		}
	}
}

func TestNewHTTPError_ExtractsBackendMessage(t *testing.T) {
	t.Parallel()
	te := NewHTTPError("login", 401, []byte(`{"message":"Invalid username or password"}`))
	if te.Message != "Invalid username or password" {
		t.Fatalf("Message = %q", te.Message)
	}
	if !strings.Contains(te.Error(), "Invalid username or password") {
		t.Fatalf("Error() = %q, missing backend message", te.Error())
	}
	if te.StatusCode != 401 {
		t.Fatalf("StatusCode = %d", te.StatusCode)
	}
}

func TestNewHTTPError_NotFoundChainsSentinel(t *testing.T) {
	t.Parallel()
	te := NewHTTPError("get user", 404, []byte(`{"message":"no such user"}`))
	if !errors.Is(te, types.ErrNotFound) {
		t.Fatal("404 does not match types.ErrNotFound")
	}
	if !strings.Contains(te.Error(), "no such user") {
		t.Errorf("Error() = %q, backend message lost", te.Error())
	}
	if errors.Is(NewHTTPError("get user", 403, nil), types.ErrNotFound) {
		t.Fatal("non-404 matches types.ErrNotFound")
	}
}

func TestNewHTTPError_MalformedBody(t *testing.T) {
	t.Parallel()
	te := NewHTTPError("list emails", 500, []byte("<html>gateway error</html>"))
	if te.Message != "" {
		t.Fatalf("Message = %q, want empty for non-JSON body", te.Message)
	}
	if !strings.Contains(te.Error(), "HTTP 500") {
		t.Fatalf("Error() = %q", te.Error())
	}
}

func TestNewNetworkError_AlwaysRecoverable(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("dial tcp: connection refused")
	te := NewNetworkError("fetch tickets", cause)
	if te.Category != Recoverable {
		t.Fatalf("Category = %s, want Recoverable", te.Category)
	}
	if te.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0", te.StatusCode)
	}
	if !errors.Is(te, cause) {
		t.Fatal("network error does not wrap its cause")
	}
}

func TestIsIrrecoverable(t *testing.T) {
	t.Parallel()
	if !IsIrrecoverable(NewHTTPError("op", 404, nil)) {
		t.Fatal("404 should be irrecoverable")
	}
	if IsIrrecoverable(NewHTTPError("op", 503, nil)) {
		t.Fatal("503 should be recoverable")
	}
	if IsIrrecoverable(fmt.Errorf("plain error")) {
		t.Fatal("unclassified errors should retry")
	}
}
