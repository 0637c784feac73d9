package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kegtui.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("log line is not JSON: %v (%q)", err, scanner.Text())
		}
		entries = append(entries, e)
	}
	return entries
}

func TestErrorWritesStructuredEntryRegardlessOfTraceGate(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)

	Error(errors.New("prefix exploded"))

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["level"] != "error" || entries[0]["event"] != "error" {
		t.Fatalf("entry = %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["error"] != "prefix exploded" {
		t.Fatalf("payload = %v", entries[0]["payload"])
	}
}

func TestTraceRespectsGate(t *testing.T) {
	path := useTempLog(t)

	SetTraceEnabled(false)
	Trace("scan.published", map[string]interface{}{"kegs": 2})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("trace written while gated off: %v", err)
	}

	SetTraceEnabled(true)
	Trace("scan.published", map[string]interface{}{"kegs": 2})
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["level"] != "trace" || entries[0]["event"] != "scan.published" {
		t.Fatalf("entry = %v", entries[0])
	}
}

func TestNilErrorWritesNothing(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nil error produced a log file: %v", err)
	}
}
