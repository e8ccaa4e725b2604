package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/giftledger/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestLoadError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.NewLoadError("payments", "/tmp/settlement.csv", base)
		assert.Equal(t, "failed to load payments source /tmp/settlement.csv: boom", err.Error())
		assert.True(t, errors.Is(err, base))
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewLoadError("exports", "", errors.New("boom"))
		assert.Equal(t, "failed to load exports source: boom", err.Error())
	})

	t.Run("unwraps to the wrapped sentinel", func(t *testing.T) {
		inner := pkgerrors.NewParseError("csv", "x.csv", "bad row", pkgerrors.ErrMalformedSource)
		err := pkgerrors.WrapLoad("payments", "x.csv", inner)
		assert.True(t, pkgerrors.IsMalformedSource(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "settlement.csv",
			Line:    7,
			Message: "row has 3 fields, header has 27",
		}
		assert.Equal(t, "parse error in csv file settlement.csv line 7: row has 3 fields, header has 27", err.Error())
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "rules.yaml", "bad mapping", nil)
		assert.Equal(t, "parse error in yaml file rules.yaml: bad mapping", err.Error())
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "csv", Message: "empty input"}
		assert.Equal(t, "csv parse error: empty input", err.Error())
	})

	t.Run("is malformed source", func(t *testing.T) {
		err := pkgerrors.NewParseError("csv", "x.csv", "bad", nil)
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedSource))
		assert.True(t, pkgerrors.IsMalformedSource(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("underlying")
		err := pkgerrors.NewParseError("csv", "x.csv", "bad", base)
		assert.True(t, errors.Is(err, base))
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("create", "/tmp/report.csv", errors.New("permission denied"))
		assert.Equal(t, "IO error during create of /tmp/report.csv: permission denied", err.Error())
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "write", Message: "disk full"}
		assert.Equal(t, "IO error during write: disk full", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("underlying")
		err := pkgerrors.NewIOError("open", "x.csv", base)
		assert.True(t, errors.Is(err, base))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("rules", "unknown card brand", nil)
		assert.Equal(t, "configuration error in rules: unknown card brand", err.Error())
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "missing file"}
		assert.Equal(t, "configuration error: missing file", err.Error())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "reports_dir",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field reports_dir: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("output_dir", "", "cannot be empty")
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, pkgerrors.IsNotFound(pkgerrors.ErrNotFound))
	wrapped := pkgerrors.WrapLoad("exports", "x.csv", pkgerrors.ErrNotFound)
	assert.True(t, pkgerrors.IsNotFound(wrapped))
	assert.False(t, pkgerrors.IsNotFound(errors.New("other")))
	assert.False(t, pkgerrors.IsNotFound(nil))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))
		assert.NoError(t, pkgerrors.WrapLoad("payments", "x", nil))
	})

	t.Run("wrap io", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.WrapIO("read", "x.csv", base)
		require.Error(t, err)
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "read", ioErr.Operation)
		assert.True(t, errors.Is(err, base))
	})

	t.Run("wrap parse", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.WrapParse("csv", "x.csv", base)
		require.Error(t, err)
		var parseErr *pkgerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "boom", parseErr.Message)
	})

	t.Run("wrap load", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.WrapLoad("designations", "x.csv", base)
		require.Error(t, err)
		var loadErr *pkgerrors.LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "designations", loadErr.Source)
	})
}
