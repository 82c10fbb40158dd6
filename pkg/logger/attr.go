package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// SessionID records the session identifier under the key "session_id".
// Never log the token itself; the UUID is safe to emit.
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// IP records a client address under the key "ip".
func IP(addr string) slog.Attr {
	return slog.String("ip", addr)
}
