package sign

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestParams_CanonicalAndStub(t *testing.T) {
	p := Params{{"live_id", "1"}, {"aid", "6383"}}

	if got := p.Canonical(); got != "live_id=1,aid=6383" {
		t.Errorf("unexpected canonical form: %s", got)
	}
	if got := p.Stub(); got != "1c9e40835ee5fb54a61905794a2b57ef" {
		t.Errorf("unexpected stub: %s", got)
	}
}

func TestParams_EmptyValuesKept(t *testing.T) {
	p := Params{{"room_id", "7"}, {"sub_room_id", ""}, {"did_rule", "3"}}
	if got := p.Canonical(); got != "room_id=7,sub_room_id=,did_rule=3" {
		t.Errorf("unexpected canonical form: %s", got)
	}
	if p.Get("did_rule") != "3" || p.Get("missing") != "" {
		t.Error("Get returned wrong values")
	}
}

func TestSigner_PassesStubToOracle(t *testing.T) {
	params := Params{{"live_id", "1"}, {"aid", "6383"}}

	var seen string
	oracle := FuncOracle(func(_ context.Context, stub string) (string, error) {
		seen = stub
		return "sig-" + stub[:4], nil
	})

	s := NewSigner(oracle, zap.NewNop())
	if got := s.Sign(context.Background(), params); got != "sig-1c9e" {
		t.Errorf("unexpected signature: %s", got)
	}
	if seen != params.Stub() {
		t.Errorf("oracle received %s, expected %s", seen, params.Stub())
	}
}

func TestSigner_SentinelOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		oracle Oracle
	}{
		{"error", FuncOracle(func(context.Context, string) (string, error) {
			return "", errors.New("engine crashed")
		})},
		{"empty", StaticOracle("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSigner(tt.oracle, zap.NewNop())
			if got := s.Sign(context.Background(), Params{{"a", "b"}}); got != Sentinel {
				t.Errorf("expected sentinel, got %s", got)
			}

			_, err := s.Try(context.Background(), Params{{"a", "b"}})
			var sErr *SigningError
			if !errors.As(err, &sErr) {
				t.Fatalf("expected *SigningError, got %v", err)
			}
		})
	}
}

func TestScriptOracle_CallsGetSign(t *testing.T) {
	src := `function get_sign(stub) { return navigator.userAgent.slice(0, 3) + ":" + stub.length; }`

	o, err := NewScriptOracle(src, "Mozilla/5.0")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := o.Sign(context.Background(), "abcdef")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if got != "Moz:6" {
		t.Errorf("unexpected signature: %s", got)
	}
}

func TestScriptOracle_BrowserGlobalsDefined(t *testing.T) {
	src := `window.seed = 1; document.cookie = ""; function get_sign(s) { return typeof window + typeof document; }`

	o, err := NewScriptOracle(src, "ua")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, _ := o.Sign(context.Background(), "x")
	if got != "objectobject" {
		t.Errorf("unexpected globals: %s", got)
	}
}

func TestScriptOracle_MissingFunction(t *testing.T) {
	_, err := NewScriptOracle(`var x = 1;`, "ua")
	if !errors.Is(err, ErrNoSignFunc) {
		t.Errorf("expected ErrNoSignFunc, got %v", err)
	}
}

func TestScriptOracle_ContextInterrupts(t *testing.T) {
	o, err := NewScriptOracle(`function get_sign(s) { for (;;) {} }`, "ua")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := o.Sign(ctx, "x"); err == nil {
		t.Error("expected interrupted script to fail")
	}
}

func TestScriptOracle_CancelDoesNotLeakIntoNextCall(t *testing.T) {
	src := `function get_sign(s) { var n = 0; for (var i = 0; i < 20000; i++) { n += i; } return s + n; }`
	o, err := NewScriptOracle(src, "ua")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	// Deadlines land before, during and just after the script finishes.
	for i := 0; i < 50; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(i%5)*100*time.Microsecond)
		_, _ = o.Sign(ctx, "x")
		cancel()

		got, err := o.Sign(context.Background(), "x")
		if err != nil {
			t.Fatalf("round %d: call after cancellation failed: %v", i, err)
		}
		if got != "x199990000" {
			t.Fatalf("round %d: unexpected signature %q", i, got)
		}
	}
}

func TestLoadScriptOracle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdk.js")
	if err := os.WriteFile(path, []byte(`function get_sign(s) { return "ok"; }`), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := LoadScriptOracle(path, "ua")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _ := o.Sign(context.Background(), "x"); got != "ok" {
		t.Errorf("unexpected signature: %s", got)
	}
}

func TestCommandOracle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	o := CommandOracle{Path: "sh", Args: []string{"-c", `echo "tok-$1"`, "sign"}}
	got, err := o.Sign(context.Background(), "stub42")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if got != "tok-stub42" {
		t.Errorf("unexpected signature: %s", got)
	}

	bad := CommandOracle{Path: "sh", Args: []string{"-c", "echo boom >&2; exit 3", "sign"}}
	_, err = bad.Sign(context.Background(), "stub")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected stderr in error, got %v", err)
	}
}

func TestWithTimeout(t *testing.T) {
	slow := FuncOracle(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := WithTimeout(slow, 20*time.Millisecond).Sign(context.Background(), "x")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	if o := WithTimeout(StaticOracle("tok"), 0); o != StaticOracle("tok") {
		t.Errorf("zero timeout should return the oracle unchanged, got %#v", o)
	}
}
