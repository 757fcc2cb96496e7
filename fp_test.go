package fpmatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/fpmatch"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := fpmatch.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := fpmatch.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := fpmatch.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestIdentity(t *testing.T) {
	if fpmatch.Identity("x") != "x" {
		t.Error("expected Identity(x) to be x, isn't")
	}
}

func TestAssertArgument(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected AssertArgument to panic with an error, got %#v", r)
		}
		if !errors.Is(err, fpmatch.ErrNilArgument) {
			t.Errorf("expected panic to wrap ErrNilArgument, is %v", err)
		}
		var argErr *fpmatch.ArgumentError
		if !errors.As(err, &argErr) || argErr.Arg != "mapper" {
			t.Errorf("expected argument error for 'mapper', is %v", err)
		}
	}()
	fpmatch.AssertArgument(true, "test", "ok")
	fpmatch.AssertArgument(false, "test", "mapper")
}
