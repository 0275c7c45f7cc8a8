package server

import (
	"context"
	"testing"
	"time"

	"gnroof/internal/config"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               ":8080",
		"9000":           ":9000",
		":9000":          ":9000",
		"127.0.0.1:9000": "127.0.0.1:9000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	s := New(config.HTTPConfig{WriteTimeout: 3 * time.Second})
	hs := s.newHTTPServer(":0", nil)
	if hs.ReadHeaderTimeout != defaultReadHeaderTimeout || hs.IdleTimeout != defaultIdleTimeout {
		t.Fatalf("defaults not applied: %v %v", hs.ReadHeaderTimeout, hs.IdleTimeout)
	}
	if hs.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout got %v", hs.WriteTimeout)
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	if err := New(config.HTTPConfig{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}
