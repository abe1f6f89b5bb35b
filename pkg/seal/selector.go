package seal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Match is the best catalog entry for a request.
type Match struct {
	// Record is a copy of the selected catalog entry.
	Record Record `json:"record"`

	// Score is the summed penalty. Lower is better; 0 is a perfect fit.
	Score float64 `json:"score"`

	// DeratedAllowBar is Record's pressure rating at the request temperature.
	DeratedAllowBar float64 `json:"derated_allow_bar"`

	// Factors itemizes each penalty component, in scoring order.
	Factors []Factor `json:"factors"`

	// Rationale is Factors rendered as one line.
	Rationale string `json:"rationale"`
}

// Selector owns a seal catalog and ranks its entries against requests.
//
// All exported methods are safe for concurrent use. Recommend scans an
// immutable snapshot and never blocks on AddSeal.
type Selector struct {
	catalog  *catalog
	recorder Recorder
	importer Importer
	logger   *slog.Logger
	now      func() time.Time // injectable for deterministic tests
}

// Option configures a Selector.
type Option func(*options)

type options struct {
	seed     []Record
	unique   bool
	recorder Recorder
	importer Importer
	logger   *slog.Logger
}

// WithCatalog replaces the seed catalog with records, kept in the given order.
// Pass no records for an empty selector.
func WithCatalog(records ...Record) Option {
	return func(o *options) { o.seed = records }
}

// WithUniquePartNumbers makes AddSeal reject a part number already present.
func WithUniquePartNumbers() Option {
	return func(o *options) { o.unique = true }
}

// WithRecorder installs a metrics hook.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithImporter installs the collaborator used by Import.
func WithImporter(imp Importer) Option {
	return func(o *options) { o.importer = imp }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New returns a Selector pre-populated with SeedCatalog unless WithCatalog
// says otherwise. It panics if a seed record fails validation, since seeds
// are fixed at build time.
func New(opts ...Option) *Selector {
	o := options{seed: SeedCatalog(), recorder: NoopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.recorder == nil {
		o.recorder = NoopRecorder{}
	}

	s := &Selector{
		catalog:  newCatalog(o.unique),
		recorder: o.recorder,
		importer: o.importer,
		logger:   o.logger,
		now:      time.Now,
	}
	for _, r := range o.seed {
		if err := s.catalog.add(r); err != nil {
			panic(fmt.Sprintf("seal: invalid seed record: %v", err))
		}
	}
	return s
}

// AddSeal validates r and appends it to the catalog. A rejected record
// leaves the catalog unchanged.
func (s *Selector) AddSeal(r Record) error {
	err := s.catalog.add(r)
	s.recorder.RecordAdd(err)
	if err != nil {
		s.logger.Warn("seal: add rejected", "part_number", r.PartNumber, "err", err)
		return err
	}
	s.logger.Debug("seal: added", "part_number", r.PartNumber, "catalog_size", s.catalog.len())
	return nil
}

// Catalog returns copies of every record in insertion order.
func (s *Selector) Catalog() []Record {
	return s.catalog.list()
}

// Lookup returns a copy of the first record with partNumber.
func (s *Selector) Lookup(partNumber string) (Record, bool) {
	return s.catalog.lookup(partNumber)
}

// Recommend ranks the catalog against req and returns the lowest-penalty
// entry. ok is false when every entry was removed by a hard filter (preferred
// materials, motion, speed); a poor but admissible fit is still returned.
//
// Ties within 1e-6 go to the entry with the larger derated pressure allowance,
// then to the entry that comes first in the catalog.
func (s *Selector) Recommend(req Request) (Match, bool) {
	start := s.now()

	var (
		best  Breakdown
		pick  Record
		found bool
	)
	for _, r := range s.catalog.snapshot() {
		if !admits(r, req) {
			continue
		}
		b := Evaluate(r, req)
		if !found || better(b, best) {
			best, pick, found = b, r, true
		}
	}

	elapsed := s.now().Sub(start)
	if !found {
		s.recorder.RecordRecommendation(false, 0, elapsed)
		s.logger.Debug("seal: no admissible entry",
			"bore_mm", req.BoreMM, "groove_cs_mm", req.GrooveCSMM, "motion", req.motion())
		return Match{}, false
	}

	s.recorder.RecordRecommendation(true, best.Score, elapsed)
	s.logger.Debug("seal: recommended",
		"part_number", pick.PartNumber, "score", best.Score, "derated_allow_bar", best.DeratedAllowBar)

	return Match{
		Record:          pick.clone(),
		Score:           best.Score,
		DeratedAllowBar: best.DeratedAllowBar,
		Factors:         best.Factors,
		Rationale:       best.Rationale(),
	}, true
}

// better reports whether candidate displaces the current best.
func better(candidate, current Breakdown) bool {
	if math.Abs(candidate.Score-current.Score) <= tieTolerance {
		return candidate.DeratedAllowBar > current.DeratedAllowBar
	}
	return candidate.Score < current.Score
}

// Import pulls records from the configured Importer and adds each one through
// AddSeal. It returns the number of records added. Records that fail
// validation are skipped and reported in the joined error.
//
// Without an Importer, Import fails with ErrUnsupported.
func (s *Selector) Import(ctx context.Context) (int, error) {
	if s.importer == nil {
		return 0, ErrUnsupported
	}

	records, err := s.importer.Import(ctx)
	if err != nil {
		return 0, fmt.Errorf("seal: import: %w", err)
	}

	var (
		added int
		errs  []error
	)
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.AddSeal(r); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}

	s.logger.Info("seal: import finished", "added", added, "skipped", len(records)-added)
	return added, errors.Join(errs...)
}
