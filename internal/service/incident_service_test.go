package service

import (
	"context"
	"testing"
	"time"

	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/repository/memory"
	"it-helpdesk-be/pkg/assistant"
	"it-helpdesk-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncidentService(provider *stubProvider, publisher *recordingPublisher) IIncidentService {
	return NewIncidentService(
		memory.NewIncidentRepository(constant.ServiceNowIncidents),
		search.NewScorer(constant.KnowledgeBase),
		provider,
		assistant.NewGenerator(),
		memory.NewAnalysisCache(),
		publisher,
		nopLogger{},
		time.Second,
	)
}

func TestListIncidents(t *testing.T) {
	is := newIncidentService(failingProvider(), &recordingPublisher{})

	res := is.List()
	assert.Equal(t, len(constant.ServiceNowIncidents), res.Total)
	assert.Equal(t, constant.IntegrationLabel, res.Integration)
}

func TestAnalyzeUnknownIncident(t *testing.T) {
	is := newIncidentService(failingProvider(), &recordingPublisher{})

	_, err := is.Analyze(context.Background(), "INC9999999")
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestAnalyzeFallsBackWhenProviderFails(t *testing.T) {
	is := newIncidentService(failingProvider(), &recordingPublisher{})

	res, err := is.Analyze(context.Background(), "INC0012347")
	require.NoError(t, err)

	assert.Equal(t, "INC0012347", res.Incident.Number)
	assert.Contains(t, res.Analysis, "ServiceNow Incident Analysis")
	assert.Contains(t, res.Analysis, "Critical system failure")
	assert.LessOrEqual(t, len(res.RelevantKB), 3)
	assert.Len(t, res.Recommendations, 3)
}

func TestAnalyzeUsesProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "Replace the faulty driver."}
	is := newIncidentService(provider, &recordingPublisher{})

	res, err := is.Analyze(context.Background(), "INC0012345")
	require.NoError(t, err)
	assert.Equal(t, "Replace the faulty driver.", res.Analysis)
}

func TestAnalyzeCachesProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "Cached analysis."}
	is := newIncidentService(provider, &recordingPublisher{})

	_, err := is.Analyze(context.Background(), "INC0012346")
	require.NoError(t, err)
	_, err = is.Analyze(context.Background(), "INC0012346")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
}

func TestAnalyzeRelevantKBFromFixture(t *testing.T) {
	is := newIncidentService(failingProvider(), &recordingPublisher{})

	// Email incident should surface the email client KB article first.
	res, err := is.Analyze(context.Background(), "INC0012345")
	require.NoError(t, err)
	require.NotEmpty(t, res.RelevantKB)
	assert.Equal(t, "KB005", res.RelevantKB[0].Id)
}
