// Package state implements the shared per-job analysis document.
//
// Every top-level key has exactly one owning agent, registered up front via
// DeclareOwner. Agents never touch the store directly: they receive a Handle
// scoped to their declared output set, so the single-writer-per-key rule is
// enforced by construction rather than by convention.
package state

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dealdesk/dealdesk/pkg/models"
)

// Sentinel errors for state access violations.
var (
	// ErrNotOwner indicates a write to a key outside the agent's declared outputs.
	ErrNotOwner = errors.New("agent does not own state key")

	// ErrOwnerConflict indicates two agents declared the same output key.
	ErrOwnerConflict = errors.New("state key already has an owner")

	// ErrWriteOnce indicates a second write to a write-once key.
	ErrWriteOnce = errors.New("state key is write-once and already committed")

	// ErrSynthesizedMissing indicates a read of synthesized_data before commit.
	ErrSynthesizedMissing = errors.New("synthesized_data has not been committed")
)

// AnomalyEntry is one entry in the append-only anomaly log.
type AnomalyEntry struct {
	Agent      string    `json:"agent"`
	Category   string    `json:"category"`
	Message    string    `json:"message"`
	RecordedAt time.Time `json:"recorded_at"`
}

// WriteOp is one entry in the write-audit log.
type WriteOp struct {
	Agent string
	Key   Key
	At    time.Time
}

// Store is the in-memory analysis state for a single job.
// Safe for concurrent use by agents running in the same scheduling wave.
type Store struct {
	mu      sync.RWMutex
	values  map[Key]any
	owners  map[Key]string
	audit   []WriteOp
	records []models.AgentRecord
	anomaly []AnomalyEntry
}

// New creates an empty Store with the ingestion owner pre-registered
// for the raw data keys.
func New() *Store {
	s := &Store{
		values: make(map[Key]any),
		owners: make(map[Key]string),
	}
	for _, k := range RawDataKeys() {
		s.owners[k] = IngestionOwner
	}
	return s
}

// DeclareOwner registers agent as the sole writer of the given keys.
// Returns ErrOwnerConflict if any key is already claimed by another agent,
// which is how the scheduler statically rejects overlapping output sets.
func (s *Store) DeclareOwner(agent string, keys ...Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if existing, ok := s.owners[k]; ok && existing != agent {
			return fmt.Errorf("%w: %q claimed by %q and %q", ErrOwnerConflict, k, existing, agent)
		}
	}
	for _, k := range keys {
		s.owners[k] = agent
	}
	return nil
}

// Owner returns the registered owner of a key, if any.
func (s *Store) Owner(k Key) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.owners[k]
	return owner, ok
}

// HandleFor returns a write handle scoped to the agent's owned keys.
func (s *Store) HandleFor(agent string) *Handle {
	return &Handle{store: s, agent: agent}
}

// Get returns the committed value for a key.
func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[k]
	return v, ok
}

// GetMap returns the value for a key as a map payload, or nil if the key is
// absent or holds a different shape.
func (s *Store) GetMap(k Key) map[string]any {
	v, ok := s.Get(k)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// Has reports whether a key holds a non-nil committed value.
func (s *Store) Has(k Key) bool {
	v, ok := s.Get(k)
	return ok && v != nil
}

// Synthesized returns the canonical consolidated document, failing fast when
// the synthesis agent has not committed it. Downstream consumers must use
// this accessor instead of Get so that a missing document is an error, not
// a silent nil.
func (s *Store) Synthesized() (map[string]any, error) {
	doc := s.GetMap(KeySynthesizedData)
	if doc == nil {
		return nil, ErrSynthesizedMissing
	}
	return doc, nil
}

// AppendRecord appends a per-agent output record. Records are never mutated
// after being appended.
func (s *Store) AppendRecord(rec models.AgentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Records returns a copy of the per-agent output records.
func (s *Store) Records() []models.AgentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AgentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RecordFor returns the record for a named agent, if present.
func (s *Store) RecordFor(agent string) (models.AgentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.AgentName == agent {
			return r, true
		}
	}
	return models.AgentRecord{}, false
}

// Anomalies returns a copy of the anomaly log. Entry order is not
// semantically meaningful; callers treat the log as a multiset.
func (s *Store) Anomalies() []AnomalyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AnomalyEntry, len(s.anomaly))
	copy(out, s.anomaly)
	return out
}

// Audit returns a copy of the write-audit log, ordered by write time.
func (s *Store) Audit() []WriteOp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]WriteOp, len(s.audit))
	copy(out, s.audit)
	return out
}

// WritersOf returns the distinct agent names that wrote the key, per the
// audit log. Used by tests to assert the single-writer invariant.
func (s *Store) WritersOf(k Key) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	for _, op := range s.audit {
		if op.Key == k {
			seen[op.Agent] = true
		}
	}
	writers := make([]string, 0, len(seen))
	for w := range seen {
		writers = append(writers, w)
	}
	sort.Strings(writers)
	return writers
}

// set performs the ownership-checked write. Called only through Handle.
func (s *Store) set(agent string, k Key, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.owners[k]
	if !ok || owner != agent {
		return fmt.Errorf("%w: %q writing %q (owner: %q)", ErrNotOwner, agent, k, owner)
	}
	if k == KeySynthesizedData {
		if _, committed := s.values[k]; committed {
			return fmt.Errorf("%w: %q", ErrWriteOnce, k)
		}
	}

	s.values[k] = v
	s.audit = append(s.audit, WriteOp{Agent: agent, Key: k, At: time.Now()})
	return nil
}

// appendAnomaly appends to the anomaly log on behalf of an agent.
func (s *Store) appendAnomaly(agent, category, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anomaly = append(s.anomaly, AnomalyEntry{
		Agent:      agent,
		Category:   category,
		Message:    message,
		RecordedAt: time.Now(),
	})
}

// Handle is an agent-scoped view of the Store. It permits writes only to
// keys the agent declared as outputs, plus appends to the anomaly log.
type Handle struct {
	store *Store
	agent string
}

// Agent returns the name the handle is scoped to.
func (h *Handle) Agent() string { return h.agent }

// Set writes a value to an owned key.
func (h *Handle) Set(k Key, v any) error {
	return h.store.set(h.agent, k, v)
}

// Get reads any committed key. Reads are unrestricted; the scheduler
// guarantees dependencies committed before the agent started.
func (h *Handle) Get(k Key) (any, bool) {
	return h.store.Get(k)
}

// GetMap reads a committed key as a map payload.
func (h *Handle) GetMap(k Key) map[string]any {
	return h.store.GetMap(k)
}

// Has reports whether a key holds a committed value.
func (h *Handle) Has(k Key) bool {
	return h.store.Has(k)
}

// AppendAnomaly appends an entry to the shared anomaly log, attributed to
// this handle's agent.
func (h *Handle) AppendAnomaly(category, message string) {
	h.store.appendAnomaly(h.agent, category, message)
}

// Records exposes the committed per-agent records (read-only copy), used by
// the synthesis and external-validation agents.
func (h *Handle) Records() []models.AgentRecord {
	return h.store.Records()
}

// Anomalies exposes the anomaly log (read-only copy).
func (h *Handle) Anomalies() []AnomalyEntry {
	return h.store.Anomalies()
}
