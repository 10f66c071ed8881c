package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/usersummary/internal/domain"
	"github.com/osse101/usersummary/internal/logger"
	"github.com/osse101/usersummary/internal/metrics"
)

// UserFetcher is the HTTP boundary the service reads from.
type UserFetcher interface {
	FetchUsers(ctx context.Context, url string) ([]domain.User, error)
	FetchJSON(ctx context.Context, url string) (interface{}, error)
}

// Options configures endpoints and city prefixes.
type Options struct {
	UsersURL       string
	InvalidURL     string
	PrimaryPrefix  string
	FallbackPrefix string
}

// Outcome describes one completed operation. Err is the error that was
// handled at the operation boundary, if any; it has already been reported.
type Outcome struct {
	Summaries    []domain.Summary
	FallbackUsed bool
	Err          error
}

// Service runs the summarize pipeline and the error-path demonstration.
type Service struct {
	fetcher  UserFetcher
	reporter Reporter
	opts     Options
}

// NewService creates a new summary service
func NewService(fetcher UserFetcher, reporter Reporter, opts Options) *Service {
	return &Service{
		fetcher:  fetcher,
		reporter: reporter,
		opts:     opts,
	}
}

// FetchUsersAndSummarize fetches the users, reports one line per user in a
// city matching the primary prefix (or the fallback prefix when none does),
// then checks that at least one city matched either prefix.
// Failures are reported and returned inside the Outcome, never as an error.
func (s *Service) FetchUsersAndSummarize(ctx context.Context) Outcome {
	out := s.summarize(ctx)
	if out.Err != nil {
		s.handle(ctx, OperationSummarize, LabelSummarizeFailure, out.Err)
	}
	return out
}

func (s *Service) summarize(ctx context.Context) Outcome {
	log := logger.FromContext(ctx)

	users, err := s.fetcher.FetchUsers(ctx, s.opts.UsersURL)
	if err != nil {
		return Outcome{Err: err}
	}

	s.reporter.Notice(MsgFetchedUsers)
	log.Info("Fetched users", "count", len(users))
	log.Debug("Fetched user records", "users", users)

	matched, fallback := SelectByCity(users, s.opts.PrimaryPrefix, s.opts.FallbackPrefix)
	if fallback {
		metrics.FallbacksTaken.Inc()
		msg := fmt.Sprintf(MsgFallbackTemplate, s.opts.PrimaryPrefix, s.opts.FallbackPrefix)
		s.reporter.Notice(msg)
		log.Info("City prefix fallback", "primary", s.opts.PrimaryPrefix, "fallback", s.opts.FallbackPrefix)
	}

	out := Outcome{
		Summaries:    Summarize(matched),
		FallbackUsed: fallback,
	}
	for _, sum := range out.Summaries {
		s.reporter.Summary(sum)
		metrics.SummariesReported.Inc()
	}

	// Checked over the full set after reporting.
	if !AnyCityHasPrefix(users, s.opts.PrimaryPrefix, s.opts.FallbackPrefix) {
		out.Err = fmt.Errorf("%w: no city starts with %q or %q",
			domain.ErrNoMatch, s.opts.PrimaryPrefix, s.opts.FallbackPrefix)
	}
	return out
}

// TestError requests the invalid endpoint to exercise the failure path.
// On the unexpected success path the decoded body is logged.
func (s *Service) TestError(ctx context.Context) Outcome {
	data, err := s.fetcher.FetchJSON(ctx, s.opts.InvalidURL)
	if err != nil {
		err = fmt.Errorf("%s: %w", ErrMsgInvalidEndpoint, err)
		s.handle(ctx, OperationErrorDemo, LabelErrorDemoFailure, err)
		return Outcome{Err: err}
	}

	logger.FromContext(ctx).Info("Invalid endpoint answered", "body", data)
	return Outcome{}
}

// handle records a caught failure. The reporter prints it for the user, so
// the structured record stays at debug level.
func (s *Service) handle(ctx context.Context, operation, label string, err error) {
	kind := domain.ErrorKind(err)
	metrics.ErrorsHandled.WithLabelValues(operation, kind).Inc()
	logger.FromContext(ctx).LogAttrs(ctx, slog.LevelDebug, label,
		slog.String("operation", operation),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
	s.reporter.Failure(label, err)
}
