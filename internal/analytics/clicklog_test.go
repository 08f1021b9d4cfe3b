package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/analytics"
	"shortlink/internal/domain"
	"shortlink/internal/metrics"
)

var flushOnClose = metrics.BatcherConfig{BufferSize: 100, FlushThreshold: 100, FlushInterval: time.Hour}

func TestRedisClickLog(t *testing.T) {
	mr, client := setupRedis(t)

	log := analytics.NewRedisClickLog(client, 1000, flushOnClose, discard)
	log.Start(context.Background())

	now := time.Now()
	log.Add(domain.Click{ShortCode: "abc123", Time: now, IPAddress: "203.0.113.7", UserAgent: "curl/8"})
	log.Add(domain.Click{ShortCode: "abc123", Time: now, Referer: "https://news.example.com"})
	log.Close()

	entries, err := mr.Stream(analytics.ClickStream)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := map[string]string{}
	for i := 0; i+1 < len(entries[0].Values); i += 2 {
		first[entries[0].Values[i]] = entries[0].Values[i+1]
	}
	assert.Equal(t, "abc123", first["short_code"])
	assert.Equal(t, "203.0.113.7", first["ip_address"])
	assert.Equal(t, "curl/8", first["user_agent"])
}

type rowCopier struct {
	table string
	cols  []string
	rows  [][]any
}

func (c *rowCopier) CopyFrom(_ context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	c.table = table.Sanitize()
	c.cols = cols
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, vals)
	}
	return int64(len(c.rows)), nil
}

func TestPostgresClickLog(t *testing.T) {
	db := &rowCopier{}

	log := analytics.NewPostgresClickLog(db, flushOnClose, discard)
	log.Start(context.Background())
	log.Add(domain.Click{ShortCode: "abc123", Time: time.Now(), UserAgent: "curl/8"})
	log.Close()

	assert.Equal(t, `"url_clicks"`, db.table)
	assert.Equal(t, []string{"time", "short_code", "ip_address", "user_agent", "referer"}, db.cols)
	require.Len(t, db.rows, 1)

	row := db.rows[0]
	assert.Equal(t, "abc123", row[1])
	assert.Nil(t, row[2].(*string), "empty client fields are stored as NULL")
	assert.Equal(t, "curl/8", *row[3].(*string))
}
