package testutil

import (
	"io"
	"log"

	"github.com/pmezard/go-difflib/difflib"

	"classtrack/core"
	logsvc "classtrack/services/logger"
	inmemkv "classtrack/storage/kv/inmem"
)

// NewKV returns a fresh in-memory store.
func NewKV() core.KVStore {
	return inmemkv.NewStore()
}

// NewLogger returns a quiet logger.
func NewLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(io.Discard, "", 0), &core.Config{})
}

// Diff returns a unified diff of want vs got; empty when they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	return diff
}
