package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
)

// Ensure LoggingSource implements catalog.Source.
var _ catalog.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with one log line per call.
type LoggingSource struct {
	next   catalog.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next catalog.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

func (s *LoggingSource) logListing(op string, begin time.Time, listing *catalog.Listing, err error, attrs ...any) {
	var count, skipped int
	var hasMore bool
	if listing != nil {
		count, skipped, hasMore = len(listing.Entries), listing.Skipped, listing.HasMore
	}
	attrs = append(attrs,
		"count", count,
		"skipped", skipped,
		"has_more", hasMore,
		"duration", time.Since(begin),
		"err", err,
	)
	s.logger.Info(op, attrs...)
}

// ListPopular delegates to the wrapped source and logs the result.
func (s *LoggingSource) ListPopular(ctx context.Context, page int) (listing *catalog.Listing, err error) {
	defer func(begin time.Time) {
		s.logListing("list popular", begin, listing, err, "page", page)
	}(time.Now())
	return s.next.ListPopular(ctx, page)
}

// ListLatest delegates to the wrapped source and logs the result.
func (s *LoggingSource) ListLatest(ctx context.Context, page int) (listing *catalog.Listing, err error) {
	defer func(begin time.Time) {
		s.logListing("list latest", begin, listing, err, "page", page)
	}(time.Now())
	return s.next.ListLatest(ctx, page)
}

// Search delegates to the wrapped source and logs the result.
func (s *LoggingSource) Search(ctx context.Context, page int, query string) (listing *catalog.Listing, err error) {
	defer func(begin time.Time) {
		s.logListing("search", begin, listing, err, "page", page, "query", query)
	}(time.Now())
	return s.next.Search(ctx, page, query)
}

// FetchDetail delegates to the wrapped source and logs the result.
func (s *LoggingSource) FetchDetail(ctx context.Context, id string) (detail *catalog.Detail, err error) {
	defer func(begin time.Time) {
		var status catalog.Status
		if detail != nil {
			status = detail.Status
		}
		s.logger.Info("fetch detail",
			"id", id,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchDetail(ctx, id)
}

// ListChapters delegates to the wrapped source and logs the result.
func (s *LoggingSource) ListChapters(ctx context.Context, id string) (chapters []*catalog.Chapter, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list chapters",
			"id", id,
			"count", len(chapters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListChapters(ctx, id)
}

// ListPages delegates to the wrapped source and logs the result.
func (s *LoggingSource) ListPages(ctx context.Context, chapterID string) (pages []*catalog.Page, err error) {
	defer func(begin time.Time) {
		missing := 0
		for _, p := range pages {
			if p.URL == "" {
				missing++
			}
		}
		s.logger.Info("list pages",
			"id", chapterID,
			"count", len(pages),
			"missing", missing,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListPages(ctx, chapterID)
}

// ImageURL delegates to the wrapped source. Unsupported lookups are logged at
// debug level.
func (s *LoggingSource) ImageURL(ctx context.Context, pageURL string) (url string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if catalog.IsNotSupported(err) {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "image url",
			"page", pageURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImageURL(ctx, pageURL)
}
