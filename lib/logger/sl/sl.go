package sl

import "log/slog"

// Err packs an error into a slog attribute under the conventional key.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
