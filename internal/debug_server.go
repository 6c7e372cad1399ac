package internal

import (
	"conference-sim/repositories"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// Prefixes lists the collections offered by the inspector.
var Prefixes = []string{
	repositories.PrefixRoom,
	repositories.PrefixEvent,
	repositories.PrefixUser,
	repositories.PrefixMessage,
}

type InspectRow struct {
	Key      string
	Kind     string
	Position string
	EntityID string
	Detail   string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix   string
	Prefixes []string
	Items    []InspectRow
	Stats    map[string]any
}

// CollectRows maps every entry stored under prefix.
func CollectRows(db *badger.DB, prefix string, mapper RowMapper) ([]InspectRow, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	var rows []InspectRow
	err := repositories.Scan(db, prefix, func(key string, value []byte) error {
		rows = append(rows, mapper(key, value))
		return nil
	})
	return rows, err
}

// NewDebugHandler serves a read-only HTML view of the store at endpoint.
// The collection is picked with ?prefix=, users by default.
func NewDebugHandler(db *badger.DB, endpoint string, mapper RowMapper, statsProvider StatsProvider, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = repositories.PrefixUser
		}

		data := PageData{
			Prefix:   prefix,
			Prefixes: Prefixes,
			Stats:    make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		rows, err := CollectRows(db, prefix, mapper)
		if err != nil {
			log.Warn("Inspector scan failed", "prefix", prefix, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Items = rows

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = tmpl.Execute(w, data); err != nil {
			log.Warn("Inspector rendering failed", "error", err)
		}
	})
	return mux
}

// StartDebugServer serves the inspector on localhost in the background.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider, log *slog.Logger) {
	handler := NewDebugHandler(db, endpoint, mapper, statsProvider, log)
	go func() {
		address := fmt.Sprintf("localhost:%d", port)
		if err := http.ListenAndServe(address, handler); err != nil {
			log.Warn("Debug server stopped", "address", address, "error", err)
		}
	}()
}

// DefaultMapper splits a "{prefix}:{position}:{id}" key and reports the value size.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:      key,
		Kind:     "RAW",
		Position: "------",
		EntityID: "--------",
		Detail:   "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.SplitN(key, ":", 3)
	if len(parts) == 3 {
		row.Kind = strings.ToUpper(parts[0])
		if _, err := strconv.Atoi(parts[1]); err == nil {
			row.Position = parts[1]
		}
		row.EntityID = parts[2]
	}
	return row
}
