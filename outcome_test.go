package seosheet_test

import (
	"testing"

	"github.com/fwojciec/seosheet"
	"github.com/stretchr/testify/assert"
)

func TestRunReport_Count(t *testing.T) {
	t.Parallel()

	report := &seosheet.RunReport{
		Outcomes: []seosheet.Outcome{
			{Status: seosheet.StatusPersisted},
			{Status: seosheet.StatusSkipped},
			{Status: seosheet.StatusPersisted},
		},
	}

	assert.Equal(t, 2, report.Count(seosheet.StatusPersisted))
	assert.Equal(t, 1, report.Count(seosheet.StatusSkipped))
	assert.Equal(t, 0, report.Count(seosheet.StatusWriteFailed))
}

func TestRunReport_Summary(t *testing.T) {
	t.Parallel()

	report := &seosheet.RunReport{
		Outcomes: []seosheet.Outcome{
			{Status: seosheet.StatusPersisted},
			{Status: seosheet.StatusNoContent},
		},
	}

	assert.Equal(t,
		"rows=2 persisted=1 skipped=0 no_content=1 no_generation=0 write_failed=0",
		report.Summary())
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires sheet ID", func(t *testing.T) {
		t.Parallel()

		err := (&seosheet.Run{}).Validate()

		assert.Equal(t, seosheet.EINVALID, seosheet.ErrorCode(err))
	})

	t.Run("accepts run with sheet ID", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&seosheet.Run{SheetID: "sheet-1"}).Validate())
	})
}
