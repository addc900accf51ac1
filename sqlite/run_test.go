package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRun(t *testing.T, svc *sqlite.RunService, sheetID string) *seosheet.Run {
	t.Helper()
	run := &seosheet.Run{SheetID: sheetID}
	require.NoError(t, svc.CreateRun(context.Background(), run))
	return run
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and start time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		run := createTestRun(t, svc, "sheet-1")

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())
	})

	t.Run("requires sheet ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &seosheet.Run{})

		require.Error(t, err)
		assert.Equal(t, seosheet.EINVALID, seosheet.ErrorCode(err))
	})
}

func TestRunService_RecordOutcome(t *testing.T) {
	t.Parallel()

	t.Run("stores outcomes in row order with body hash", func(t *testing.T) {
		t.Parallel()

		// Given
		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := createTestRun(t, svc, "sheet-1")

		// When
		require.NoError(t, svc.RecordOutcome(ctx, run.ID, seosheet.Outcome{
			Row:    seosheet.Row{Index: 2, Number: 3},
			Status: seosheet.StatusSkipped,
			Reason: "no URL",
		}))
		require.NoError(t, svc.RecordOutcome(ctx, run.ID, seosheet.Outcome{
			Row:    seosheet.Row{Index: 1, Number: 2, URL: "https://a.example"},
			Status: seosheet.StatusPersisted,
			Result: &seosheet.ParsedResult{MetaTitle: "Title", MetaDescription: "Desc", BodyContent: "Body"},
		}))

		// Then
		entries, err := svc.FindEntries(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, 2, entries[0].RowNumber)
		assert.Equal(t, "https://a.example", entries[0].URL)
		assert.Equal(t, seosheet.StatusPersisted, entries[0].Status)
		assert.Equal(t, "Title", entries[0].MetaTitle)
		assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64String("Body")), entries[0].BodyHash)
		assert.False(t, entries[0].RecordedAt.IsZero())

		assert.Equal(t, 3, entries[1].RowNumber)
		assert.Equal(t, seosheet.StatusSkipped, entries[1].Status)
		assert.Equal(t, "no URL", entries[1].Reason)
		assert.Empty(t, entries[1].BodyHash)
	})

	t.Run("same body gives same hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := createTestRun(t, svc, "sheet-1")
		result := &seosheet.ParsedResult{BodyContent: "identical body"}

		for i := 1; i <= 2; i++ {
			require.NoError(t, svc.RecordOutcome(ctx, run.ID, seosheet.Outcome{
				Row:    seosheet.Row{Index: i, Number: i + 1},
				Status: seosheet.StatusPersisted,
				Result: result,
			}))
		}

		entries, err := svc.FindEntries(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entries[0].BodyHash, entries[1].BodyHash)
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.RecordOutcome(context.Background(), "missing", seosheet.Outcome{Status: seosheet.StatusSkipped})

		require.Error(t, err)
		assert.Equal(t, seosheet.ENOTFOUND, seosheet.ErrorCode(err))
	})
}

func TestRunService_FinishRun(t *testing.T) {
	t.Parallel()

	t.Run("stores summary and finish time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := createTestRun(t, svc, "sheet-1")

		require.NoError(t, svc.FinishRun(ctx, run.ID, "rows=1 persisted=1"))

		runs, err := svc.FindRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "rows=1 persisted=1", runs[0].Summary)
		assert.False(t, runs[0].FinishedAt.IsZero())
		assert.Equal(t, "sheet-1", runs[0].SheetID)
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.FinishRun(context.Background(), "missing", "")

		require.Error(t, err)
		assert.Equal(t, seosheet.ENOTFOUND, seosheet.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first and honors limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		first := createTestRun(t, svc, "sheet-a")
		second := createTestRun(t, svc, "sheet-b")
		third := createTestRun(t, svc, "sheet-c")

		all, err := svc.FindRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
		assert.True(t, all[0].FinishedAt.IsZero(), "unfinished run has zero finish time")

		limited, err := svc.FindRuns(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("empty journal returns empty slice", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		runs, err := svc.FindRuns(context.Background(), 10)

		require.NoError(t, err)
		assert.NotNil(t, runs)
		assert.Empty(t, runs)
	})
}

func TestRunService_FindEntries(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRunService(setupTestDB(t))

	_, err := svc.FindEntries(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, seosheet.ENOTFOUND, seosheet.ErrorCode(err))
}
