package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/models"
)

func TestDeclareOwner(t *testing.T) {
	t.Run("registers keys for an agent", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("financial-analyst", KeyNormalizedFinancials, KeyValuationModels))

		owner, ok := s.Owner(KeyNormalizedFinancials)
		require.True(t, ok)
		assert.Equal(t, "financial-analyst", owner)
	})

	t.Run("rejects a key claimed by another agent", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("financial-analyst", KeyValuationModels))

		err := s.DeclareOwner("advanced-valuation", KeyValuationModels)
		require.ErrorIs(t, err, ErrOwnerConflict)
	})

	t.Run("rejects raw keys claimed by agents", func(t *testing.T) {
		s := New()
		err := s.DeclareOwner("financial-analyst", KeyFinancialData)
		require.ErrorIs(t, err, ErrOwnerConflict)
	})

	t.Run("redeclaring own keys is a no-op", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("legal-counsel", KeyLegal))
		require.NoError(t, s.DeclareOwner("legal-counsel", KeyLegal))
	})
}

func TestHandleSet(t *testing.T) {
	t.Run("owner writes succeed", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("risk-assessment", KeyRisk))

		h := s.HandleFor("risk-assessment")
		require.NoError(t, h.Set(KeyRisk, map[string]any{"overall": "medium"}))

		got := s.GetMap(KeyRisk)
		require.NotNil(t, got)
		assert.Equal(t, "medium", got["overall"])
	})

	t.Run("non-owner writes are rejected", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("risk-assessment", KeyRisk))

		h := s.HandleFor("legal-counsel")
		err := h.Set(KeyRisk, map[string]any{})
		require.ErrorIs(t, err, ErrNotOwner)

		_, ok := s.Get(KeyRisk)
		assert.False(t, ok, "rejected write must not commit")
	})

	t.Run("writes to undeclared keys are rejected", func(t *testing.T) {
		s := New()
		h := s.HandleFor("legal-counsel")
		err := h.Set(KeyLegal, map[string]any{})
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("every key has at most one writer in the audit log", func(t *testing.T) {
		s := New()
		require.NoError(t, s.DeclareOwner("financial-analyst", KeyNormalizedFinancials, KeyValuationModels))
		require.NoError(t, s.DeclareOwner("tax-structuring", KeyTax))

		fa := s.HandleFor("financial-analyst")
		tax := s.HandleFor("tax-structuring")
		require.NoError(t, fa.Set(KeyNormalizedFinancials, map[string]any{}))
		require.NoError(t, fa.Set(KeyValuationModels, map[string]any{}))
		require.NoError(t, fa.Set(KeyValuationModels, map[string]any{"revised": true}))
		require.NoError(t, tax.Set(KeyTax, map[string]any{}))
		assert.Error(t, tax.Set(KeyNormalizedFinancials, map[string]any{}))

		for _, op := range s.Audit() {
			writers := s.WritersOf(op.Key)
			assert.Len(t, writers, 1, "key %q has writers %v", op.Key, writers)
		}
	})
}

func TestSynthesizedWriteOnce(t *testing.T) {
	s := New()
	require.NoError(t, s.DeclareOwner("synthesis", KeySynthesizedData))
	h := s.HandleFor("synthesis")

	require.NoError(t, h.Set(KeySynthesizedData, map[string]any{"data_version": "2.0"}))

	err := h.Set(KeySynthesizedData, map[string]any{"data_version": "2.1"})
	require.ErrorIs(t, err, ErrWriteOnce)

	doc, err := s.Synthesized()
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc["data_version"], "first write wins")
}

func TestSynthesizedFailsFastWhenMissing(t *testing.T) {
	s := New()
	_, err := s.Synthesized()
	require.ErrorIs(t, err, ErrSynthesizedMissing)
}

func TestAnomalyLogConcurrentAppend(t *testing.T) {
	s := New()
	agents := []string{"financial-analyst", "legal-counsel", "risk-assessment", "macroeconomic-analyst"}

	var wg sync.WaitGroup
	for _, name := range agents {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			h := s.HandleFor(name)
			for i := 0; i < 25; i++ {
				h.AppendAnomaly("margin_outlier", "net margin outside plausible band")
			}
		}(name)
	}
	wg.Wait()

	entries := s.Anomalies()
	require.Len(t, entries, 100)

	perAgent := make(map[string]int)
	for _, e := range entries {
		perAgent[e.Agent]++
	}
	for _, name := range agents {
		assert.Equal(t, 25, perAgent[name], "no appends lost for %s", name)
	}
}

func TestRecords(t *testing.T) {
	s := New()
	now := time.Now()
	s.AppendRecord(models.AgentRecord{
		JobID:     "job-1",
		AgentName: "financial-analyst",
		Status:    models.AgentStatusOK,
		StartedAt: now,
	})
	s.AppendRecord(models.AgentRecord{
		JobID:     "job-1",
		AgentName: "legal-counsel",
		Status:    models.AgentStatusWarning,
		StartedAt: now,
	})

	rec, ok := s.RecordFor("legal-counsel")
	require.True(t, ok)
	assert.Equal(t, models.AgentStatusWarning, rec.Status)

	_, ok = s.RecordFor("market-strategist")
	assert.False(t, ok)

	// Returned slice is a copy; mutating it must not affect the store.
	records := s.Records()
	records[0].AgentName = "mutated"
	rec, ok = s.RecordFor("financial-analyst")
	require.True(t, ok)
	assert.Equal(t, "financial-analyst", rec.AgentName)
}

func TestGetMapShapeMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.DeclareOwner("x", Key("scratch")))
	require.NoError(t, s.HandleFor("x").Set(Key("scratch"), []string{"not", "a", "map"}))

	assert.Nil(t, s.GetMap(Key("scratch")))
	assert.True(t, s.Has(Key("scratch")))
}
