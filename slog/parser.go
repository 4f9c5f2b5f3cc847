// Package slog provides logging decorators for msdocs interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/msdocs"
)

// Ensure LoggingParser implements msdocs.RecordParser.
var _ msdocs.RecordParser = (*LoggingParser)(nil)

// LoggingParser wraps a RecordParser with debug logging of parse failures.
// Extraction silently skips files that fail to parse, so these logs are the
// only way to observe which sources were rejected and why.
type LoggingParser struct {
	next   msdocs.RecordParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next msdocs.RecordParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseFile delegates to the wrapped parser, logging failures.
func (p *LoggingParser) ParseFile(path string) (*msdocs.Record, error) {
	begin := time.Now()
	rec, err := p.next.ParseFile(path)
	if err != nil {
		p.logger.Debug("failed to process file",
			"path", path,
			"error", msdocs.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	return rec, nil
}
