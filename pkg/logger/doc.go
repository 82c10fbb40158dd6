// Package logger builds configured *slog.Logger instances for the
// service.
//
// The factory defaults to JSON output at info level, suitable for log
// aggregation in production. Development and production presets flip the
// format/level pair and stamp service metadata onto every record.
//
// # Usage
//
//	log := logger.New(logger.WithProduction("payroll-api"))
//	logger.SetAsDefault(log)
//
//	log.Info("session created",
//	    logger.UserID(identity.UserID),
//	    logger.IP(meta.IPAddress),
//	)
//
// Attribute helpers keep key names consistent across the codebase and
// guard against logging sensitive values: SessionID takes the session's
// UUID, never its token.
package logger
