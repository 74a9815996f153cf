// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and the per-kind constructors

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/cleanfig/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrIO, "read failed")

	if err.Code != errors.ErrIO {
		t.Errorf("New() code = %v, want %v", err.Code, errors.ErrIO)
	}
	if err.Details == nil {
		t.Error("New() details should be initialized")
	}
	if got, want := err.Error(), "[IO] read failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIO, "io error")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		if got, want := err.Error(), "[IO] io error: base error"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should see the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrIO, "io error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestConstructors(t *testing.T) {
	cause := &fs.PathError{Op: "symlink", Path: "/h/x", Err: fs.ErrPermission}

	tests := []struct {
		name    string
		err     *errors.CleanfigError
		code    errors.ErrorCode
		wantStr string
	}{
		{
			name:    "missing_root",
			err:     errors.MissingRoot("/h/.config/cleanfig", nil),
			code:    errors.ErrMissingRoot,
			wantStr: "[MISSING_ROOT] `~/.config/cleanfig` does not exist",
		},
		{
			name:    "io",
			err:     errors.IO(stderrors.New("boom")),
			code:    errors.ErrIO,
			wantStr: "[IO] io error: boom",
		},
		{
			name:    "invalid_config",
			err:     errors.InvalidConfig("unknown.cfg"),
			code:    errors.ErrInvalidConfig,
			wantStr: "[INVALID_CONFIG] invalid config path `unknown.cfg`",
		},
		{
			name:    "invalid_privilege",
			err:     errors.InvalidPrivilege("/h/x", cause),
			code:    errors.ErrInvalidPrivilege,
			wantStr: "[INVALID_PRIVILEGE] must run as administrator: symlink /h/x: permission denied",
		},
		{
			name:    "env_var",
			err:     errors.EnvVar("environment variable not found: HOME"),
			code:    errors.ErrEnvVar,
			wantStr: "[ENV_VAR] environment variable not found: HOME",
		},
		{
			name:    "existing_path",
			err:     errors.ExistingPath("/h/.config/starship.toml"),
			code:    errors.ErrExistingPath,
			wantStr: "[EXISTING_PATH] path `/h/.config/starship.toml` already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %v, want %v", tt.err.Code, tt.code)
			}
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestInvalidConfigDetails(t *testing.T) {
	err := errors.InvalidConfig("foo.ini")

	details := errors.GetErrorDetails(err)
	if details["name"] != "foo.ini" {
		t.Errorf("details name = %v, want foo.ini", details["name"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.ExistingPath("/a")
	err2 := errors.ExistingPath("/b")
	err3 := errors.InvalidConfig("c")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"cleanfig_error", errors.InvalidConfig("x"), errors.ErrInvalidConfig},
		{"standard_error", stderrors.New("plain"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
			if got := errors.IsErrorCode(tt.err, errors.ErrInvalidConfig); got != (tt.expected == errors.ErrInvalidConfig) {
				t.Errorf("IsErrorCode() = %v", got)
			}
		})
	}
}
