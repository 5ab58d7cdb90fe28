package extraction

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"courtcal/internal/audit"
	"courtcal/internal/extraction/metrics"
	regcache "courtcal/internal/registry/cache"
	dErrors "courtcal/pkg/domain-errors"
	"courtcal/pkg/requestcontext"
)

// DocumentStore retrieves report documents by path.
type DocumentStore interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// CalendarExtractor is the AI boundary. ExtractCalendar returns the raw JSON
// content the model produced; it does not interpret it.
type CalendarExtractor interface {
	Configured() bool
	ExtractCalendar(ctx context.Context, document []byte) ([]byte, error)
}

// RegistrySnapshots supplies registry snapshots for enrichment.
type RegistrySnapshots interface {
	Get(ctx context.Context, building string) (*regcache.Snapshot, error)
	Load(ctx context.Context, building string) (*regcache.Snapshot, error)
	Clear()
}

// AuditSink records extraction audit rows. Failures are logged by the service
// and never surface to the caller.
type AuditSink interface {
	Emit(ctx context.Context, rec audit.Record) error
}

// Service drives the extraction pipeline end to end.
type Service struct {
	documents DocumentStore
	ai        CalendarExtractor
	registry  RegistrySnapshots
	resolver  *Resolver
	auditor   AuditSink
	building  string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

func NewService(
	documents DocumentStore,
	ai CalendarExtractor,
	registry RegistrySnapshots,
	resolver *Resolver,
	auditor AuditSink,
	building string,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		documents: documents,
		ai:        ai,
		registry:  registry,
		resolver:  resolver,
		auditor:   auditor,
		building:  building,
		logger:    logger,
		metrics:   m,
		tracer:    otel.Tracer("courtcal/extraction"),
	}
}

// Extract runs one document through the pipeline: validate, fetch, AI call,
// normalize, enrich, audit. Every failure maps to exactly one taxonomy code;
// none are retried here.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (*Report, error) {
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)

	report, err := s.extract(ctx, req)
	s.metrics.ObserveExtractLatency(time.Since(start))
	if err != nil {
		s.metrics.IncrementOutcome(string(dErrors.CodeOf(err)))
		return nil, err
	}
	s.metrics.IncrementOutcome("ok")
	s.metrics.ObserveSessions(len(report.Sessions))

	s.logger.InfoContext(ctx, "report extracted",
		"request_id", requestID,
		"file_path", req.FilePath,
		"report_date", report.ReportDate,
		"entries", len(report.Entries),
		"sessions", len(report.Sessions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (s *Service) extract(ctx context.Context, req ExtractRequest) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "extraction.extract")
	defer span.End()

	if requestcontext.UserID(ctx) == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	path := strings.TrimSpace(req.FilePath)
	if path == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "filePath is required")
	}
	if !s.ai.Configured() {
		// No fallback extraction path exists.
		return nil, dErrors.New(dErrors.CodeServiceUnavailable, "extraction service is not configured")
	}

	document, err := s.fetchDocument(ctx, path)
	if err != nil {
		return nil, err
	}

	raw, err := s.callAI(ctx, document)
	if err != nil {
		return nil, err
	}

	report, err := s.normalize(raw)
	if err != nil {
		return nil, err
	}

	s.enrich(ctx, report)

	s.writeAudit(ctx, path, report, len(raw))

	return report, nil
}

func (s *Service) fetchDocument(ctx context.Context, path string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "extraction.fetch_document")
	defer span.End()

	document, err := s.documents.Fetch(ctx, path)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeNotFound, "document not found", err)
	}
	if len(document) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "document is empty")
	}
	span.SetAttributes(attribute.Int("document.bytes", len(document)))
	return document, nil
}

func (s *Service) callAI(ctx context.Context, document []byte) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "extraction.ai_call")
	defer span.End()

	start := time.Now()
	raw, err := s.ai.ExtractCalendar(ctx, document)
	s.metrics.ObserveAILatency(time.Since(start))
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeExtractionFailed, "calendar extraction failed", err)
	}
	span.SetAttributes(attribute.Int("response.bytes", len(raw)))
	return raw, nil
}

func (s *Service) normalize(raw []byte) (*Report, error) {
	var payload rawReport
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeMalformedResponse, "extraction response is not valid JSON", err)
	}

	entries := normalizeEntries(payload.Entries)
	if len(entries) == 0 {
		// Distinct from malformed: the boundary completed but found nothing.
		return nil, dErrors.New(dErrors.CodeNoDataExtracted, "no calendar entries extracted")
	}

	return &Report{
		ReportDate: toString(payload.ReportDate),
		Building:   toString(payload.Building),
		ReportType: toString(payload.ReportType),
		Entries:    entries,
	}, nil
}

// enrich builds the per-session view: decompose each composite part cell,
// resolve room, judge, and clerk against the registry, and apply the
// confidence policy. A registry failure degrades to unenriched sessions rather
// than failing the request.
func (s *Service) enrich(ctx context.Context, report *Report) {
	ctx, span := s.tracer.Start(ctx, "extraction.enrich")
	defer span.End()

	snap, err := s.registry.Get(ctx, s.building)
	if err != nil {
		s.logger.WarnContext(ctx, "registry unavailable, returning unenriched sessions",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		snap = nil
	}

	report.Sessions = make([]ExtractedSession, 0, len(report.Entries))
	for _, entry := range report.Entries {
		report.Sessions = append(report.Sessions, s.enrichEntry(entry, snap))
	}
}

func (s *Service) enrichEntry(entry ExtractedEntry, snap *regcache.Snapshot) ExtractedSession {
	cell := ParsePartCell(entry.Part)

	session := ExtractedSession{
		PartNumber:    cell.PartNumber,
		JudgeName:     entry.Judge,
		CalendarWeek:  cell.CalendarWeek,
		CalendarDay:   cell.CalendarDay,
		AbsenceStatus: cell.AbsenceStatus,
		AbsenceDates:  append(cell.AbsenceDates, entry.OutDates...),
		Cases:         entry.Cases,
		Confidence:    entry.Confidence,
	}
	if session.CalendarDay == "" {
		session.CalendarDay = entry.CalendarDay
	}
	if session.AbsenceDates == nil {
		session.AbsenceDates = []string{}
	}
	if snap == nil {
		return session
	}

	session.RoomNumber = s.resolver.RoomFromPart(session.PartNumber, snap)
	if session.RoomNumber == "" && session.JudgeName != "" {
		session.RoomNumber = s.resolver.RoomFromJudge(session.JudgeName, snap)
	}

	if session.JudgeName == "" {
		// The part cell never carries the judge; backfill from the registry.
		session.JudgeName = s.resolver.JudgeForRoom(session.RoomNumber, snap)
	} else {
		session.JudgeName = s.resolver.CanonicalJudgeName(session.JudgeName, snap)
	}

	session.ClerkName = s.resolver.ClerkForRoom(session.RoomNumber, snap)

	ApplyConfidence(&session)
	return session
}

// writeAudit records the extraction; failures are logged and swallowed so the
// success path is never altered by the sink.
func (s *Service) writeAudit(ctx context.Context, path string, report *Report, rawLen int) {
	ctx, span := s.tracer.Start(ctx, "extraction.audit")
	defer span.End()

	// total_cases sums each row's case_count; a row with no usable count still
	// represents at least one case.
	totalCases := 0
	for _, e := range report.Entries {
		for _, c := range e.Cases {
			n := c.CaseCount
			if n < 1 {
				n = 1
			}
			totalCases += n
		}
	}

	rec := audit.Record{
		FilePath:          path,
		ReportDate:        report.ReportDate,
		Building:          report.Building,
		PartsExtracted:    len(report.Entries),
		TotalCases:        totalCases,
		RawResponseLength: rawLen,
		CreatedAt:         requestcontext.Now(ctx),
	}
	if err := s.auditor.Emit(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "audit write failed",
			"request_id", requestcontext.RequestID(ctx),
			"file_path", path,
			"error", err,
		)
	}
}

// ReloadRegistry rebuilds the registry cache, surfacing registry_unavailable
// when the hard room dependency fails.
func (s *Service) ReloadRegistry(ctx context.Context) error {
	_, err := s.registry.Load(ctx, s.building)
	return err
}

// ClearRegistry discards the cached registry snapshot.
func (s *Service) ClearRegistry() {
	s.registry.Clear()
}
