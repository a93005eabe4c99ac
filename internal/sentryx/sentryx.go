// SPDX-License-Identifier: Apache-2.0

// Package sentryx wires optional Sentry error reporting into the bot
// runtime. Everything here is a no-op when no DSN is configured, which is
// the common case for self-hosted installs.
package sentryx

import (
	"time"

	"github.com/automa-saga/logx"
	"github.com/getsentry/sentry-go"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/version"
)

const flushTimeout = 2 * time.Second

// Init configures the global Sentry client. An empty DSN disables reporting
// without error.
func Init(dsn string, environment string) error {
	if dsn == "" {
		logx.As().Debug().Msg("Sentry DSN not configured, error reporting disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     version.Number(),
	})
	if err != nil {
		return errorx.Decorate(err, "cannot initialize Sentry")
	}

	logx.As().Info().Str("environment", environment).Msg("Sentry error reporting enabled")
	return nil
}

// Flush drains buffered events, waiting at most the flush timeout. Call it
// on shutdown so in-flight reports survive the exit.
func Flush() {
	sentry.Flush(flushTimeout)
}

// CaptureError reports err with the given tags attached. Safe to call when
// reporting is disabled; nil errors are ignored.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
