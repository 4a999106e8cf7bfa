package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecom-complaint-be/internal/constant"
	"telecom-complaint-be/internal/dto"
	"telecom-complaint-be/internal/taxonomy"
	"telecom-complaint-be/pkg/llm/llmtest"
	"telecom-complaint-be/pkg/triage/matcher"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func newTestService(t *testing.T, fake *llmtest.Fake) (IComplaintService, *capturingPublisher) {
	t.Helper()
	menu := taxonomy.DefaultMenu()
	require.NoError(t, menu.Validate())
	publisher := &capturingPublisher{}
	return NewComplaintService(menu, fake, publisher, noopLogger{}), publisher
}

func TestResolve_FullPipelineWithMatching(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "network complaint", "is_telecom": true}`,
		`{"reasoning": "signal drop", "matched_subprocess": "Network / Signal Problems", "confidence": 0.94}`,
		"Dear customer, here are the steps to restore your signal.",
	}}
	svc, publisher := newTestService(t, fake)

	res, err := svc.Resolve(context.Background(), &dto.ResolveRequest{
		Query:         "My calls keep dropping near my house",
		SectorKey:     "1",
		SubprocessKey: "8", // Others: triggers the matcher
	})

	require.NoError(t, err)
	assert.True(t, res.IsTelecom)
	assert.Equal(t, "Network / Signal Problems", res.IdentifiedSubprocess)
	assert.Equal(t, "Dear customer, here are the steps to restore your signal.", res.Resolution)
	assert.Equal(t, 3, fake.CallCount(), "gate + matcher + generator")
	assert.Len(t, publisher.payloads, 1)
	assert.Contains(t, string(publisher.payloads[0]), "COMPLAINT_RESOLVED")
}

func TestResolve_KnownSubprocessSkipsMatcher(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "billing complaint", "is_telecom": true}`,
		"Here is how to dispute the charge.",
	}}
	svc, _ := newTestService(t, fake)

	res, err := svc.Resolve(context.Background(), &dto.ResolveRequest{
		Query:         "I was double charged on my last bill",
		SectorKey:     "1",
		SubprocessKey: "1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Billing & Payment Issues", res.IdentifiedSubprocess)
	assert.Equal(t, 2, fake.CallCount(), "gate + generator only")
}

func TestResolve_RejectedOutOfDomain(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "cooking question", "is_telecom": false}`,
	}}
	svc, publisher := newTestService(t, fake)

	res, err := svc.Resolve(context.Background(), &dto.ResolveRequest{
		Query:     "How do I bake sourdough bread?",
		SectorKey: "1",
	})

	require.NoError(t, err)
	assert.False(t, res.IsTelecom)
	assert.Empty(t, res.IdentifiedSubprocess)
	// English target: the rejection message goes out untranslated, with no
	// extra reasoning call.
	assert.Equal(t, constant.RejectionMessage, res.Resolution)
	assert.Equal(t, 1, fake.CallCount())
	assert.Len(t, publisher.payloads, 1)
	assert.Contains(t, string(publisher.payloads[0]), "COMPLAINT_REJECTED")
}

func TestResolve_EmptyQuery(t *testing.T) {
	fake := &llmtest.Fake{}
	svc, publisher := newTestService(t, fake)

	_, err := svc.Resolve(context.Background(), &dto.ResolveRequest{Query: "   \n\t "})

	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, 0, fake.CallCount(), "no reasoning calls for empty input")
	assert.Empty(t, publisher.payloads)
}

func TestResolve_UnknownSectorFallsBackToGeneralInquiry(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "telecom complaint", "is_telecom": true}`,
		"Resolution for your general inquiry.",
	}}
	svc, _ := newTestService(t, fake)

	res, err := svc.Resolve(context.Background(), &dto.ResolveRequest{
		Query:     "My operator is overcharging me",
		SectorKey: "99",
	})

	require.NoError(t, err)
	// No sector context: nothing to enumerate, so no matcher call is made.
	assert.Equal(t, matcher.GeneralInquiry, res.IdentifiedSubprocess)
	assert.Equal(t, 2, fake.CallCount())
}

func TestGetMenu(t *testing.T) {
	svc, _ := newTestService(t, &llmtest.Fake{})

	res := svc.GetMenu(context.Background())

	require.Len(t, res.Menu, 5)
	assert.Equal(t, "Mobile Services (Prepaid / Postpaid)", res.Menu["1"].Name)
	assert.NotEmpty(t, res.Menu["1"].Icon)
}

func TestGetSubprocesses_English(t *testing.T) {
	fake := &llmtest.Fake{}
	svc, _ := newTestService(t, fake)

	res, err := svc.GetSubprocesses(context.Background(), &dto.SubprocessesRequest{SectorKey: "1"})

	require.NoError(t, err)
	assert.Equal(t, "Mobile Services (Prepaid / Postpaid)", res.SectorName)
	assert.Len(t, res.Subprocesses, 8)
	assert.Equal(t, "Network / Signal Problems", res.Subprocesses["2"])
	assert.Equal(t, 0, fake.CallCount(), "English names need no translation calls")
}

func TestGetSubprocesses_Translated(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{"अनुवादित नाम"}}
	svc, _ := newTestService(t, fake)

	res, err := svc.GetSubprocesses(context.Background(), &dto.SubprocessesRequest{
		SectorKey: "3",
		Language:  "Hindi",
	})

	require.NoError(t, err)
	assert.Len(t, res.Subprocesses, 6)
	for _, name := range res.Subprocesses {
		assert.Equal(t, "अनुवादित नाम", name)
	}
	assert.Equal(t, 6, fake.CallCount(), "one translation call per subprocess")
}

func TestGetSubprocesses_UnknownSector(t *testing.T) {
	svc, _ := newTestService(t, &llmtest.Fake{})

	_, err := svc.GetSubprocesses(context.Background(), &dto.SubprocessesRequest{SectorKey: "42"})

	assert.ErrorIs(t, err, ErrUnknownSector)
}

func TestDetectLanguage(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{`{"language": "Tamil", "code": "ta"}`}}
	svc, _ := newTestService(t, fake)

	res := svc.DetectLanguage(context.Background(), &dto.DetectLanguageRequest{
		Text: "எனது சிம் கார்டு வேலை செய்யவில்லை",
	})

	assert.Equal(t, "Tamil", res.Language)
}

func TestResolve_GateFailureBenefitOfTheDoubt(t *testing.T) {
	// A sector was chosen, the gate call fails: the pipeline proceeds rather
	// than rejecting a customer who already navigated the menu.
	fake := &llmtest.Fake{Responses: []string{
		"not json at all",
		`{"reasoning": "x", "matched_subprocess": "SIM Card & Activation", "confidence": 0.4}`,
		"Steps to reactivate your SIM.",
	}}
	svc, _ := newTestService(t, fake)

	res, err := svc.Resolve(context.Background(), &dto.ResolveRequest{
		Query:         "sim not working",
		SectorKey:     "1",
		SubprocessKey: "8",
	})

	require.NoError(t, err)
	assert.True(t, res.IsTelecom)
	assert.Equal(t, "SIM Card & Activation", res.IdentifiedSubprocess)
	if !strings.Contains(res.Resolution, "SIM") {
		t.Errorf("unexpected resolution text: %q", res.Resolution)
	}
}
