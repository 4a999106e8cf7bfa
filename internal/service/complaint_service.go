package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"telecom-complaint-be/internal/constant"
	"telecom-complaint-be/internal/dto"
	"telecom-complaint-be/internal/pkg/logger"
	"telecom-complaint-be/internal/taxonomy"
	"telecom-complaint-be/pkg/events"
	"telecom-complaint-be/pkg/llm"
	"telecom-complaint-be/pkg/resolution"
	"telecom-complaint-be/pkg/translate"
	"telecom-complaint-be/pkg/triage/gate"
	"telecom-complaint-be/pkg/triage/language"
	"telecom-complaint-be/pkg/triage/matcher"
)

// User-input errors, surfaced by the controller as HTTP 400 without any
// reasoning call having been made.
var (
	ErrEmptyQuery    = errors.New("empty complaint query")
	ErrUnknownSector = errors.New("unknown sector key")
)

// IComplaintService defines the complaint pipeline interface
type IComplaintService interface {
	GetMenu(ctx context.Context) *dto.MenuResponse
	GetSubprocesses(ctx context.Context, request *dto.SubprocessesRequest) (*dto.SubprocessesResponse, error)
	Resolve(ctx context.Context, request *dto.ResolveRequest) (*dto.ResolveResponse, error)
	DetectLanguage(ctx context.Context, request *dto.DetectLanguageRequest) *dto.DetectLanguageResponse
}

// complaintService sequences the pipeline stages per request:
// domain gate → category matcher (when needed) → resolution generator, with
// the translator applied to any message returned before resolution. Each
// stage absorbs its own failures (see the triage packages), so the pipeline
// always reaches a terminal state without a global retry loop.
type complaintService struct {
	menu             *taxonomy.Menu
	publisherService IPublisherService
	sysLogger        logger.ILogger

	// Pipeline stages
	domainGate        *gate.Gate
	subprocessMatcher *matcher.Matcher
	langDetector      *language.Detector
	generator         *resolution.Generator
	translator        *translate.Translator
}

// NewComplaintService creates the complaint service with all pipeline stages
func NewComplaintService(
	menu *taxonomy.Menu,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IComplaintService {

	llmLogger := initLLMLogger()

	return &complaintService{
		menu:             menu,
		publisherService: publisherService,
		sysLogger:        sysLogger,

		domainGate:        gate.New(llmProvider, llmLogger),
		subprocessMatcher: matcher.New(llmProvider, llmLogger),
		langDetector:      language.New(llmProvider, llmLogger),
		generator:         resolution.New(llmProvider, llmLogger),
		translator:        translate.New(llmProvider, llmLogger),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// GetMenu returns the sector menu for display.
func (cs *complaintService) GetMenu(ctx context.Context) *dto.MenuResponse {
	menu := make(map[string]dto.MenuSector, len(cs.menu.SectorOrder))
	for _, key := range cs.menu.SectorOrder {
		sector := cs.menu.Sectors[key]
		menu[key] = dto.MenuSector{Name: sector.Name, Icon: sector.Icon}
	}
	return &dto.MenuResponse{Menu: menu}
}

// GetSubprocesses returns a sector's subprocess names, localized when the
// requested language is not English.
func (cs *complaintService) GetSubprocesses(ctx context.Context, request *dto.SubprocessesRequest) (*dto.SubprocessesResponse, error) {
	sector, ok := cs.menu.Sector(request.SectorKey)
	if !ok {
		return nil, ErrUnknownSector
	}

	lang := request.Language
	if lang == "" {
		lang = constant.DefaultLanguage
	}

	subprocesses := make(map[string]string, len(sector.SubprocessOrder))
	for _, key := range sector.SubprocessOrder {
		// Translate is the identity for English and never fails open:
		// worst case the name comes back untranslated.
		subprocesses[key] = cs.translator.Translate(ctx, sector.Subprocesses[key].Name, lang)
	}

	return &dto.SubprocessesResponse{
		SectorName:   sector.Name,
		Subprocesses: subprocesses,
	}, nil
}

// Resolve runs the full pipeline for one complaint.
func (cs *complaintService) Resolve(ctx context.Context, request *dto.ResolveRequest) (*dto.ResolveResponse, error) {
	query := strings.TrimSpace(request.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	lang := request.Language
	if lang == "" {
		lang = constant.DefaultLanguage
	}

	// Resolve sector/subprocess context from the taxonomy. Unknown keys
	// degrade to the generic domain label and free-text matching.
	sectorName := constant.DefaultSectorName
	subprocessName := taxonomy.OthersName
	var sector *taxonomy.Sector
	if s, ok := cs.menu.Sector(request.SectorKey); ok {
		sector = &s
		sectorName = s.Name
		if sp, ok := s.Subprocess(request.SubprocessKey); ok {
			subprocessName = sp.Name
		}
	}

	// Step 1: semantic domain validation (with full menu context)
	decision := cs.domainGate.Check(ctx, query, sectorName, subprocessName)
	if !decision.InDomain {
		cs.sysLogger.Info("complaint", "query rejected by domain gate", map[string]interface{}{
			"sector":    sectorName,
			"reasoning": decision.Reasoning,
		})
		cs.publish(ctx, events.ComplaintRejected(sectorName, lang, decision.Reasoning))

		return &dto.ResolveResponse{
			Resolution: cs.translator.Translate(ctx, constant.RejectionMessage, lang),
			IsTelecom:  false,
		}, nil
	}

	// Step 2: semantic subprocess identification
	if subprocessName == taxonomy.OthersName {
		if sector != nil {
			subprocessName = cs.subprocessMatcher.Match(ctx, query, sector).Subprocess
		} else {
			// No sector to enumerate candidates from.
			subprocessName = matcher.GeneralInquiry
		}
	}

	// Step 3: generate resolution in the target language
	resolutionText := cs.generator.Generate(ctx, query, sectorName, subprocessName, lang)

	cs.publish(ctx, events.ComplaintResolved(sectorName, subprocessName, lang))

	return &dto.ResolveResponse{
		Resolution:           resolutionText,
		IsTelecom:            true,
		IdentifiedSubprocess: subprocessName,
	}, nil
}

// DetectLanguage identifies the dominant language of free text.
func (cs *complaintService) DetectLanguage(ctx context.Context, request *dto.DetectLanguageRequest) *dto.DetectLanguageResponse {
	return &dto.DetectLanguageResponse{
		Language: cs.langDetector.Detect(ctx, request.Text),
	}
}

// publish emits a pipeline event, best-effort. Analytics must never affect
// the caller-visible outcome.
func (cs *complaintService) publish(ctx context.Context, evt events.BaseEvent) {
	if cs.publisherService == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		cs.sysLogger.Error("complaint", "failed to marshal pipeline event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := cs.publisherService.Publish(ctx, payload); err != nil {
		cs.sysLogger.Error("complaint", "failed to publish pipeline event", map[string]interface{}{
			"error": err.Error(),
			"type":  evt.EventType(),
		})
	}
}
