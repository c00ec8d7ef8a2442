package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	e := NoopEditHooks{}
	e.OnQueue("s1", "move", 10, 4)
	e.OnRejected("s1", "resize", "Den")
	e.OnApply("s1", 3, 120, time.Millisecond, nil)

	c := NoopConvertHooks{}
	c.OnConvertStart("Kitchen", 4)
	c.OnConvertComplete("Kitchen", 3, 0, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Edit() should return NoopEditHooks by default")
	}
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}

	customEdit := &testEditHooks{}
	SetEditHooks(customEdit)
	if Edit() != customEdit {
		t.Error("SetEditHooks should set custom hooks")
	}

	customConvert := &testConvertHooks{}
	SetConvertHooks(customConvert)
	if Convert() != customConvert {
		t.Error("SetConvertHooks should set custom hooks")
	}

	Edit().OnApply("s1", 2, 10, 0, nil)
	if customEdit.applies != 1 {
		t.Errorf("applies = %d, want 1", customEdit.applies)
	}

	Reset()
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() should restore NoopEditHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEditHooks{}
	SetEditHooks(custom)

	// Setting nil should be ignored
	SetEditHooks(nil)

	if Edit() != custom {
		t.Error("SetEditHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testEditHooks struct {
	NoopEditHooks
	applies int
}

func (h *testEditHooks) OnApply(string, int, int, time.Duration, error) { h.applies++ }

type testConvertHooks struct{ NoopConvertHooks }
