package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"rollcall/internal/models"
)

// ErrCorrupt marks a file that exists but cannot be parsed. The public form
// path degrades to an empty default on it; admin paths surface it, since an
// export built from a half-read table would silently lose rows.
var ErrCorrupt = errors.New("stored data is corrupt")

const maxIDAttempts = 5

// Store owns all persisted state: per event one metadata record, one
// attendee table and one rendered QR image, all keyed by the event id under
// a single data directory. Table mutations are serialized per event so
// concurrent sign-ups from a shared link never lose a row.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
		now:     time.Now,
	}, nil
}

func (s *Store) metaPath(id string) string {
	return filepath.Join(s.dataDir, id+"_meta.json")
}

func (s *Store) tablePath(id string) string {
	return filepath.Join(s.dataDir, id+".csv")
}

// QRPath returns where the rendered code image for an event lives.
func (s *Store) QRPath(id string) string {
	return filepath.Join(s.dataDir, id+"_qr.png")
}

// eventLock returns the mutex serializing mutations of one event's table.
func (s *Store) eventLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Create allocates a fresh id, persists the metadata record and an empty
// attendee table, and returns the stored event. Ids are regenerated when the
// freak collision actually happens; I/O failures are returned as-is.
func (s *Store) Create(title, date, location, eventType string) (models.Event, error) {
	var id string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := NewEventID()
		if _, err := os.Stat(s.metaPath(candidate)); err == nil {
			slog.Warn("event id collision, regenerating", "id", candidate)
			continue
		}
		id = candidate
		break
	}
	if id == "" {
		return models.Event{}, fmt.Errorf("could not allocate a unique event id after %d attempts", maxIDAttempts)
	}

	ev := models.Event{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Date:      strings.TrimSpace(date),
		Location:  strings.TrimSpace(location),
		EventType: strings.TrimSpace(eventType),
		CreatedAt: s.now().Format(models.CreatedAtFormat),
	}

	l := s.eventLock(id)
	l.Lock()
	defer l.Unlock()

	if err := s.writeTable(id, nil); err != nil {
		return models.Event{}, err
	}
	raw, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return models.Event{}, fmt.Errorf("encoding event metadata: %w", err)
	}
	if err := atomicWrite(s.metaPath(id), raw); err != nil {
		return models.Event{}, fmt.Errorf("writing event metadata: %w", err)
	}
	return ev, nil
}

// ReadMeta returns the stored metadata for id. An unknown id is a soft miss:
// a zero-value event carrying only the id comes back with a nil error, so
// stale printed codes render an empty form instead of crashing.
func (s *Store) ReadMeta(id string) (models.Event, error) {
	raw, err := os.ReadFile(s.metaPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return models.Event{ID: id}, nil
	}
	if err != nil {
		return models.Event{ID: id}, fmt.Errorf("reading event metadata: %w", err)
	}
	var ev models.Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return models.Event{ID: id}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.metaPath(id), err)
	}
	return ev, nil
}

// ListEvents returns all known events, most recently created first. Events
// with a missing created_at sort last; individually unreadable metadata
// files are skipped with a warning rather than failing the whole list.
func (s *Store) ListEvents() ([]models.Event, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}
	events := make([]models.Event, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_meta.json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			slog.Warn("skipping unreadable event metadata", "file", entry.Name(), "error", err)
			continue
		}
		var ev models.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			slog.Warn("skipping corrupt event metadata", "file", entry.Name(), "error", err)
			continue
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt > events[j].CreatedAt
	})
	return events, nil
}

// LoadAttendees returns the event's rows in insertion order. A missing table
// is an empty roster; a corrupt one returns the empty roster plus ErrCorrupt
// so the caller decides whether to degrade or to fail.
func (s *Store) LoadAttendees(id string) ([]models.Attendee, error) {
	l := s.eventLock(id)
	l.Lock()
	defer l.Unlock()
	return s.readTable(id)
}

// AppendAttendee adds one row to the event's table. The load-append-rewrite
// sequence holds the event lock for its whole duration, so two sign-ups from
// the same check-in desk cannot drop each other's row. Append refuses to
// rewrite a table it could not parse.
func (s *Store) AppendAttendee(id string, a models.Attendee) error {
	l := s.eventLock(id)
	l.Lock()
	defer l.Unlock()

	rows, err := s.readTable(id)
	if err != nil {
		return err
	}
	rows = append(rows, a)
	return s.writeTable(id, rows)
}

// ResetAttendees truncates the event's table to zero rows, keeping the
// column schema in place. This is the only destructive operation.
func (s *Store) ResetAttendees(id string) error {
	l := s.eventLock(id)
	l.Lock()
	defer l.Unlock()
	return s.writeTable(id, nil)
}

// WriteQR stores the rendered code image, replacing any previous one.
func (s *Store) WriteQR(id string, png []byte) error {
	if err := atomicWrite(s.QRPath(id), png); err != nil {
		return fmt.Errorf("writing qr image: %w", err)
	}
	return nil
}

// HasQR reports whether a rendered code image exists for the event.
func (s *Store) HasQR(id string) bool {
	_, err := os.Stat(s.QRPath(id))
	return err == nil
}

func (s *Store) readTable(id string) ([]models.Attendee, error) {
	f, err := os.Open(s.tablePath(id))
	if errors.Is(err, os.ErrNotExist) {
		return []models.Attendee{}, nil
	}
	if err != nil {
		return []models.Attendee{}, fmt.Errorf("opening attendee table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return []models.Attendee{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.tablePath(id), err)
	}
	rows := make([]models.Attendee, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			// header
			continue
		}
		rows = append(rows, models.AttendeeFromRow(rec))
	}
	return rows, nil
}

// writeTable rewrites the whole table, header first, via a temp file and
// rename so a crashed write never leaves a half table behind.
func (s *Store) writeTable(id string, rows []models.Attendee) error {
	tmp, err := os.CreateTemp(s.dataDir, id+"_*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp table: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(models.AttendeeColumns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, a := range rows {
		if err := w.Write(a.Row()); err != nil {
			tmp.Close()
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp table: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.tablePath(id)); err != nil {
		return fmt.Errorf("replacing attendee table: %w", err)
	}
	return nil
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
