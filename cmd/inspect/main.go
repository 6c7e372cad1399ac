package main

import (
	"conference-sim/domain"
	"conference-sim/internal"
	"conference-sim/repositories"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan, every collection when empty")
	serve := flag.Bool("http", false, "Serve the inspector page instead of printing a table")
	flag.Parse()

	// BypassLockGuard allows opening while the conference holds the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if *serve {
		logger := logs.GetLoggerFromString(config.LogLevel)
		fmt.Printf("Inspector started at http://localhost:%d/inspect\n", config.DebugPort)
		internal.StartDebugServer(db, config.DebugPort, "/inspect", ConferenceMapper, nil, logger)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()
		return
	}

	prefixes := internal.Prefixes
	if *prefix != "" {
		prefixes = []string{*prefix}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Position", "Entity ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, p := range prefixes {
		rows, err := internal.CollectRows(db, p, ConferenceMapper)
		if err != nil {
			log.Fatal(err)
		}
		for _, row := range rows {
			table.Append([]string{row.Key, row.Kind, row.Position, row.EntityID, row.Detail})
		}
	}
	table.Render()
}

// ConferenceMapper decodes the stored JSON to print a one-line summary per entity.
func ConferenceMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, repositories.PrefixRoom):
		var name string
		if json.Unmarshal(val, &name) == nil {
			row.Detail = name
		}
	case strings.HasPrefix(key, repositories.PrefixEvent):
		var e domain.Event
		if json.Unmarshal(val, &e) == nil {
			row.Detail = fmt.Sprintf("%s by %s, %d/%d seats", e, e.SpeakerID, len(e.Attendees), e.Capacity)
		}
	case strings.HasPrefix(key, repositories.PrefixUser):
		var u domain.User
		if json.Unmarshal(val, &u) == nil {
			row.Detail = u.Role.String() + ", friends: " + strconv.Itoa(len(u.Friends))
		}
	case strings.HasPrefix(key, repositories.PrefixMessage):
		var m domain.Message
		if json.Unmarshal(val, &m) == nil {
			row.Detail = m.String()
		}
	}
	return row
}
