// Package extraction turns raw resume text into ResumeData through an LLM, and tailors an
// existing resume to a job description.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/sirupsen/logrus"
)

const promptFile = "extraction.json"

// noSummary is reported when a tailoring reply has no improvement summary.
const noSummary = "Improvement summary not available"

var (
	summaryTag = regexp.MustCompile(`(?is)<ImprovementSummary>(.*?)</ImprovementSummary>`)
	resumeTag  = regexp.MustCompile(`(?is)<ImprovedResumeJSON>(.*?)</ImprovedResumeJSON>`)
)

// Extractor sends resume text to an LLM and maps the reply onto ResumeData.
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
	logger *logrus.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTier selects the model tier used for requests. The default is llm.TierStandard.
func WithTier(tier llm.ModelTier) Option {
	return func(e *Extractor) { e.tier = tier }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor over client.
func New(client llm.Client, opts ...Option) *Extractor {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	e := &Extractor{client: client, tier: llm.TierStandard, logger: silent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BuildPrompt returns the instruction block followed by the raw resume text.
func BuildPrompt(rawText string) string {
	return prompts.Format(prompts.MustGet(promptFile, "extract-resume"), map[string]string{
		"ResumeText": rawText,
	})
}

// Extract makes a single model request and returns the coerced ResumeData. Nothing is
// returned alongside an error.
func (e *Extractor) Extract(ctx context.Context, rawText string) (*types.ResumeData, error) {
	start := time.Now()
	log := e.logger.WithFields(logrus.Fields{
		"model":       e.client.GetModel(e.tier),
		"text_length": len(rawText),
	})
	log.Info("Starting resume extraction")
	validation.LogScreen(log, "resume text", validation.Screen(rawText))

	reply, err := e.client.GenerateJSON(ctx, BuildPrompt(rawText), e.tier)
	if err != nil {
		log.WithError(err).Error("Model request failed")
		return nil, &ExtractionFailedError{Message: "model request failed", Cause: err}
	}

	resume, err := e.decode(reply)
	if err != nil {
		log.WithError(err).Error("Model reply is not valid JSON")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"name":            resume.Name,
		"work_entries":    len(resume.WorkExperience),
		"processing_time": time.Since(start),
	}).Info("Resume extraction completed")
	return resume, nil
}

// Refresh re-extracts rawText into current. current is left untouched when extraction fails.
func (e *Extractor) Refresh(ctx context.Context, current *types.ResumeData, rawText string) error {
	if current == nil {
		return errors.New("refresh target is nil")
	}
	fresh, err := e.Extract(ctx, rawText)
	if err != nil {
		return err
	}
	*current = *fresh
	return nil
}

// TailorResult is a resume rewritten for one job description.
type TailorResult struct {
	Summary string
	Resume  *types.ResumeData
}

// Tailor asks the model to adapt resume to jobDescription.
func (e *Extractor) Tailor(ctx context.Context, resume *types.ResumeData, jobDescription string) (*TailorResult, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, ErrEmptyJobDescription
	}

	resumeJSON, err := json.Marshal(orEmpty(resume))
	if err != nil {
		return nil, &ExtractionFailedError{Message: "failed to encode resume", Cause: err}
	}

	log := e.logger.WithFields(logrus.Fields{
		"model":      e.client.GetModel(e.tier),
		"job_length": len(jobDescription),
	})
	log.Info("Starting resume tailoring")
	validation.LogScreen(log, "job description", validation.Screen(jobDescription))

	prompt, err := prompts.Render(promptFile, "tailor-resume", map[string]string{
		"ResumeJSON":     string(resumeJSON),
		"JobDescription": validation.Quote(validation.Redact(jobDescription), "job description"),
	})
	if err != nil {
		return nil, err
	}

	reply, err := e.client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		log.WithError(err).Error("Model request failed")
		return nil, &ExtractionFailedError{Message: "model request failed", Cause: err}
	}

	summary := noSummary
	if m := summaryTag.FindStringSubmatch(reply); m != nil && strings.TrimSpace(m[1]) != "" {
		summary = strings.TrimSpace(m[1])
	}

	payload := ""
	if m := resumeTag.FindStringSubmatch(reply); m != nil {
		payload = strings.TrimSpace(m[1])
	}
	if payload == "" {
		payload = llm.ExtractOutermostObject(reply)
	}
	if payload == "" {
		return nil, &ExtractionFailedError{Message: "reply contains no resume JSON"}
	}

	tailored, err := e.decode(payload)
	if err != nil {
		return nil, err
	}

	log.WithField("summary_length", len(summary)).Info("Resume tailoring completed")
	return &TailorResult{Summary: summary, Resume: tailored}, nil
}

// decode strips fences, unwraps a {"resume": ...} envelope and coerces every field. Schema
// violations are logged but do not fail the decode.
func (e *Extractor) decode(reply string) (*types.ResumeData, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(reply)), &payload); err != nil {
		return nil, &ExtractionFailedError{Message: "failed to parse model reply", Cause: err}
	}
	if payload == nil {
		return nil, &ExtractionFailedError{Message: "model reply is null"}
	}

	f := unwrapResume(payload)
	e.checkSchema(f)
	return toResume(f), nil
}

func (e *Extractor) checkSchema(f fields) {
	raw, err := json.Marshal(map[string]any(f))
	if err != nil {
		return
	}
	var verr *schemas.ValidationError
	if err := schemas.ValidateResumeJSON(raw); errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			e.logger.WithFields(logrus.Fields{
				"field":  fe.Field,
				"reason": fe.Message,
			}).Warn("Model reply does not match resume schema; field coerced")
		}
	}
}

func orEmpty(r *types.ResumeData) *types.ResumeData {
	if r == nil {
		return types.New()
	}
	return r
}
