package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeStatus_String(t *testing.T) {
	assert.Equal(t, "processed", OutcomeProcessed.String())
	assert.Equal(t, "duplicate", OutcomeDuplicate.String())
	assert.Equal(t, "error", OutcomeError.String())
	assert.Equal(t, "unknown", OutcomeStatus(99).String())
}

func TestIngestReport_Add(t *testing.T) {
	report := &IngestReport{}
	report.Add(IngestOutcome{Location: "/a.rtf", Status: OutcomeProcessed})
	report.Add(IngestOutcome{Location: "/a.rtf", Status: OutcomeDuplicate, Err: ErrDuplicateRecord})
	report.Add(IngestOutcome{Location: "/b.rtf", Status: OutcomeError, Err: ErrMissingDocument})
	report.Add(IngestOutcome{Location: "/c.rtf", Status: OutcomeProcessed})

	assert.Equal(t, 4, report.Total())
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, "/a.rtf", report.Outcomes[0].Location)
	assert.Equal(t, "/c.rtf", report.Outcomes[3].Location)
}
