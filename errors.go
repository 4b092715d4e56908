package crashreport

import (
	stderrors "errors"
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// wrapConfigError wraps an error with CodeInvalidConfig and attaches the config path.
func wrapConfigError(err error, message, path string) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeInvalidConfig, message, makeContext("path", path))
}

// wrapReadError wraps a config read failure. Missing files map to
// CodeNotFound, everything else to CodeInvalidConfig.
func wrapReadError(err error, path string) errors.PlatformError {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.WrapWithContext(err, errors.CodeNotFound, "config file not found", makeContext("path", path))
	}
	return wrapConfigError(err, "failed to read config file", path)
}

// makeContext builds a context map from alternating keys and values.
func makeContext(keyvals ...interface{}) map[string]interface{} {
	ctx := make(map[string]interface{}, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		if key, ok := keyvals[i].(string); ok {
			ctx[key] = keyvals[i+1]
		}
	}
	return ctx
}
