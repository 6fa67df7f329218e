package sign

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dop251/goja"
)

// ScriptOracle evaluates the platform's browser signing script in an
// embedded JavaScript engine and calls its get_sign(stub) function.
type ScriptOracle struct {
	mu   sync.Mutex
	vm   *goja.Runtime
	sign goja.Callable
}

// NewScriptOracle compiles source with a minimal browser shim exposing
// document, window and navigator.userAgent.
func NewScriptOracle(source, userAgent string) (*ScriptOracle, error) {
	vm := goja.New()

	window := vm.NewObject()
	_ = vm.Set("window", window)
	_ = vm.Set("document", vm.NewObject())
	_ = vm.Set("navigator", map[string]interface{}{"userAgent": userAgent})

	if _, err := vm.RunString(source); err != nil {
		return nil, fmt.Errorf("evaluating sign script: %w", err)
	}

	fn, ok := goja.AssertFunction(vm.Get("get_sign"))
	if !ok {
		return nil, ErrNoSignFunc
	}
	return &ScriptOracle{vm: vm, sign: fn}, nil
}

// LoadScriptOracle reads the script from path.
func LoadScriptOracle(path, userAgent string) (*ScriptOracle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sign script: %w", err)
	}
	return NewScriptOracle(string(src), userAgent)
}

// Sign calls get_sign. The runtime is single-threaded so calls are
// serialised; a cancelled context interrupts a running script.
func (o *ScriptOracle) Sign(ctx context.Context, stub string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		o.vm.Interrupt(ctx.Err())
		close(interrupted)
	})
	defer func() {
		// A late interrupt must land before it is cleared, or it leaks
		// into the next call.
		if !stop() {
			<-interrupted
		}
		o.vm.ClearInterrupt()
	}()

	v, err := o.sign(goja.Undefined(), o.vm.ToValue(stub))
	if err != nil {
		return "", fmt.Errorf("get_sign: %w", err)
	}
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return "", ErrEmptySignature
	}
	return v.String(), nil
}
