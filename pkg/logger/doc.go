// Package logger builds the *slog.Logger instances used across toastkit.
//
// New assembles a slog handler from functional options (format, level,
// output, static attributes) and wraps it in LogHandlerDecorator, which pulls
// request-scoped attributes out of context.Context on every record.
//
// Attribute helpers in attr.go keep key names consistent between the toast
// store, the HTTP layer and the demo binary:
//
//	log := logger.New(logger.WithDevelopment("toastdemo"))
//	log.DebugContext(ctx, "toast removed",
//	    logger.ToastID(t.ID),
//	    logger.Position(string(t.Position)),
//	    logger.Reason(reason.String()),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
