package console

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := New("http://localhost:8080/api", WithDemoMode(true), WithHTTPTimeout(5*time.Second))
	defer c.Close()
	if c.http.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", c.http.Timeout)
	}
}

func TestWithHTTPTimeout_RejectsNonPositive(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero timeout")
		}
	}()
	New("http://localhost:8080/api", WithHTTPTimeout(0))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Timeout: time.Second}
	c := New("http://localhost:8080/api", WithDemoMode(true), WithHTTPClient(hc))
	defer c.Close()
	if c.http != hc {
		t.Error("custom http client not installed")
	}
	// The token wrapper still goes on top of the custom client.
	if _, ok := c.http.Transport.(*tokenTransport); !ok {
		t.Errorf("transport = %T, want tokenTransport", c.http.Transport)
	}
}

func TestWithDebugLogging_WrapsUnderTokenTransport(t *testing.T) {
	t.Parallel()
	c := New("http://localhost:8080/api", WithDemoMode(true), WithDebugLogging(true))
	defer c.Close()

	tt, ok := c.http.Transport.(*tokenTransport)
	if !ok {
		t.Fatalf("outer transport = %T, want tokenTransport", c.http.Transport)
	}
	if _, ok := tt.base.(*debugTransport); !ok {
		t.Errorf("inner transport = %T, want debugTransport", tt.base)
	}
}

func TestDebugLogging_EnabledFromEnv(t *testing.T) {
	t.Setenv("OPSDESK_DEBUG", "true")
	c := New("http://localhost:8080/api", WithDemoMode(true))
	defer c.Close()

	tt, ok := c.http.Transport.(*tokenTransport)
	if !ok {
		t.Fatalf("outer transport = %T", c.http.Transport)
	}
	if _, ok := tt.base.(*debugTransport); !ok {
		t.Errorf("OPSDESK_DEBUG=true did not install the debug transport, got %T", tt.base)
	}
}

func TestDebugLoggingRequested(t *testing.T) {
	t.Setenv("OPSDESK_DEBUG", "")
	t.Setenv("DEBUG", "")
	if debugLoggingRequested() {
		t.Fatal("debug requested with no env set")
	}
	t.Setenv("DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("DEBUG=true not honoured")
	}
	t.Setenv("DEBUG", "1")
	if debugLoggingRequested() {
		t.Fatal(`only the exact value "true" enables debug`)
	}
}
