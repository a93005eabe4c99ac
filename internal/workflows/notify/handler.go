package notify

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
)

// Handler carries the callbacks the provisioning steps fire as they run.
// The default implementation writes structured log lines; callers that want
// to mirror progress elsewhere (a channel, a webhook) swap their own
// callbacks in via SetDefault.
type Handler struct {
	StepStart      func(ctx context.Context, stp automa.Step, msg string, args ...interface{})
	StepCompletion func(ctx context.Context, stp automa.Step, report *automa.Report, msg string, args ...interface{})
	StepFailure    func(ctx context.Context, stp automa.Step, report *automa.Report, msg string, args ...interface{})
}

var handler = &Handler{
	StepStart: func(ctx context.Context, stp automa.Step, msg string, args ...interface{}) {
		logx.As().Info().
			Str("step_id", stp.Id()).
			Msgf(msg, args...)
	},
	StepCompletion: func(ctx context.Context, stp automa.Step, report *automa.Report, msg string, args ...interface{}) {
		logx.As().Info().
			Str("step_id", stp.Id()).
			Str("status", report.Status.String()).
			Msgf(msg, args...)
	},
	StepFailure: func(ctx context.Context, stp automa.Step, report *automa.Report, msg string, args ...interface{}) {
		l := logx.As().Error().Err(report.Error).
			Str("step_id", stp.Id()).
			Str("status", report.Status.String())

		// Workflows nest sub-workflows, so the report that names the real
		// cause may sit several levels below the one handed to us.
		if cause := firstFailure(report); cause != nil && cause.Id != report.Id {
			l.
				Str("cause", cause.Error.Error()).
				Str("cause_step_id", cause.Id)
		}

		l.Msgf(msg, args...)
	},
}

// firstFailure walks the report tree depth-first and returns the deepest
// report on the first failing branch, or nil when no child failed.
func firstFailure(report *automa.Report) *automa.Report {
	for _, child := range report.StepReports {
		if !child.HasError() {
			continue
		}
		if leaf := firstFailure(child); leaf != nil {
			return leaf
		}
		return child
	}
	return nil
}

// As returns the handler the steps report through.
func As() *Handler {
	return handler
}

// SetDefault replaces the non-nil callbacks of the current handler. A
// partially populated Handler keeps the remaining defaults in place.
func SetDefault(h *Handler) {
	if h.StepStart != nil {
		handler.StepStart = h.StepStart
	}

	if h.StepCompletion != nil {
		handler.StepCompletion = h.StepCompletion
	}

	if h.StepFailure != nil {
		handler.StepFailure = h.StepFailure
	}
}
