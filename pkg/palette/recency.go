package palette

import (
	"encoding/json"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"
)

const (
	// RecentKey is the storage key holding the serialized recency list.
	RecentKey = "recent-commands"
	// RecentCap is the number of command ids remembered.
	RecentCap = 5
)

// Storage is the key/value capability the recency list persists through.
// Get reports ok=false for absent keys.
type Storage interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Recency is an ordered, duplicate-free, capped list of recently executed
// command ids, most recent first. Persistence is best effort.
type Recency struct {
	storage Storage
	key     string
	log     logr.Logger
	ids     []string
}

// RecencyOption configures a Recency.
type RecencyOption func(*Recency)

// WithRecencyKey overrides the storage key.
func WithRecencyKey(key string) RecencyOption {
	return func(r *Recency) {
		if key != "" {
			r.key = key
		}
	}
}

// WithRecencyLogger sets the logger used to report persistence failures.
func WithRecencyLogger(log logr.Logger) RecencyOption {
	return func(r *Recency) { r.log = log }
}

// NewRecency returns a Recency restored from storage. A nil storage keeps the
// list in memory only. Absent or unreadable data yields an empty list.
func NewRecency(storage Storage, opts ...RecencyOption) *Recency {
	r := &Recency{
		storage: storage,
		key:     RecentKey,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ids = r.load()
	return r
}

func (r *Recency) load() []string {
	if r.storage == nil {
		return nil
	}
	data, ok, err := r.storage.Get(r.key)
	if err != nil {
		r.log.V(1).Info("recent commands unreadable, starting empty", "key", r.key, "error", err.Error())
		return nil
	}
	if !ok {
		return nil
	}
	return parseRecent(data)
}

// parseRecent decodes a JSON array of ids, skipping non-string entries and
// duplicates. Anything that is not a JSON array decodes to nil.
func parseRecent(data []byte) []string {
	if !gjson.ValidBytes(data) {
		return nil
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil
	}
	var ids []string
	seen := make(map[string]bool)
	root.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String || seen[v.Str] {
			return true
		}
		seen[v.Str] = true
		ids = append(ids, v.Str)
		return len(ids) < RecentCap
	})
	return ids
}

// Record moves id to the front of the list, trims it to RecentCap and
// persists the result.
func (r *Recency) Record(id string) {
	next := make([]string, 0, RecentCap)
	next = append(next, id)
	for _, existing := range r.ids {
		if existing == id {
			continue
		}
		if len(next) == RecentCap {
			break
		}
		next = append(next, existing)
	}
	r.ids = next
	r.save()
}

// List returns the ids, most recent first.
func (r *Recency) List() []string {
	return append(make([]string, 0, len(r.ids)), r.ids...)
}

// Len reports how many ids are remembered.
func (r *Recency) Len() int {
	return len(r.ids)
}

// Clear forgets every id and removes the persisted entry.
func (r *Recency) Clear() {
	r.ids = nil
	if r.storage == nil {
		return
	}
	if err := r.storage.Delete(r.key); err != nil {
		r.log.Error(err, "failed to clear recent commands", "key", r.key)
	}
}

func (r *Recency) save() {
	if r.storage == nil {
		return
	}
	data, err := json.Marshal(r.ids)
	if err != nil {
		r.log.Error(err, "failed to encode recent commands")
		return
	}
	if err := r.storage.Set(r.key, data); err != nil {
		r.log.Error(err, "failed to persist recent commands", "key", r.key)
	}
}
