package cron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	n     int64
	err   error
	calls int
}

func (s *stubCounter) CountOrphanedBugs() (int64, error) {
	s.calls++
	return s.n, s.err
}

func TestReportOrphanedBugs(t *testing.T) {
	t.Run("returns count", func(t *testing.T) {
		counter := &stubCounter{n: 3}
		n, err := ReportOrphanedBugs(counter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, 1, counter.calls)
	})

	t.Run("propagates error", func(t *testing.T) {
		counter := &stubCounter{err: errors.New("db down")}
		_, err := ReportOrphanedBugs(counter)
		assert.EqualError(t, err, "db down")
	})
}

func TestStartOrphanReport(t *testing.T) {
	t.Run("empty schedule disables", func(t *testing.T) {
		c, err := StartOrphanReport("", &stubCounter{})
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := StartOrphanReport("not a schedule", &stubCounter{})
		assert.Error(t, err)
	})

	t.Run("valid schedule registers one entry", func(t *testing.T) {
		c, err := StartOrphanReport("@every 1h", &stubCounter{})
		require.NoError(t, err)
		require.NotNil(t, c)
		defer c.Stop()
		assert.Len(t, c.Entries(), 1)
	})
}
