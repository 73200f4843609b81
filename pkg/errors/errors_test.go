package errors

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type testHandler struct {
	onError func(*UIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *UIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "ui.Bind",
		Kind: KindUsage,
		Err:  ErrBothTargets,
	}
	want := "ui.Bind [usage]: " + ErrBothTargets.Error()
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUIErrorWithWidget(t *testing.T) {
	err := &UIError{
		Op:     "ui.ConfigureFrame",
		Kind:   KindUsage,
		Widget: "frame#3",
		Err:    ErrTextAndImage,
	}
	if got := err.Error(); !strings.Contains(got, "widget=frame#3") {
		t.Errorf("error string %q should contain widget", got)
	}
	if !Is(err, ErrTextAndImage) {
		t.Error("expected UIError to unwrap to ErrTextAndImage")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUsage, "usage"},
		{KindLookup, "lookup"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{KindPlatform, "platform"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "ui.Dispatch"
	if got, want := err.Error(), "panic in ui.Dispatch: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *UIError
	SetHandler(&testHandler{onError: func(err *UIError) { captured = err }})
	defer SetHandler(nil)

	Report(&UIError{Op: "test.op", Kind: KindLookup, Err: ErrUnknownClass})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestFatalReportsThenExits(t *testing.T) {
	var order []string
	SetHandler(&testHandler{onError: func(*UIError) { order = append(order, "report") }})
	defer SetHandler(nil)
	prev := SetExitFunc(func(code int) {
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		order = append(order, "exit")
	})
	defer SetExitFunc(prev)

	Fatal(&UIError{Op: "test.fatal", Kind: KindUsage, Err: ErrTextAndImage})

	if strings.Join(order, ",") != "report,exit" {
		t.Errorf("order = %v, want [report exit]", order)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.cb", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	h := &LogHandler{}
	h.HandleError(&UIError{Op: "ui.Unbind", Kind: KindUsage, Widget: "button#2", Err: ErrNoTarget})
	out := buf.String()
	for _, want := range []string{"op=ui.Unbind", "kind=usage", "widget=button#2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
