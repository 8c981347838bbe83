package iocache

import (
	"testing"
	"time"

	"github.com/huangsam/gitcredit/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "activity_cache", false},
		{"leading underscore", "_private", false},
		{"digits allowed", "cache2", false},
		{"empty", "", true},
		{"leading digit", "2cache", true},
		{"sql injection", "cache; DROP TABLE users", true},
		{"spaces", "my table", true},
		{"quotes", `cache"name`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC)

	sqliteVal := formatTime(ts, schema.SQLiteBackend)
	str, ok := sqliteVal.(string)
	assert.True(t, ok, "SQLite stores times as text")
	parsed, err := time.Parse(time.RFC3339Nano, str)
	assert.NoError(t, err)
	assert.True(t, ts.Equal(parsed))

	mysqlVal := formatTime(ts, schema.MySQLBackend)
	_, ok = mysqlVal.(time.Time)
	assert.True(t, ok, "server backends keep native time values")
}
