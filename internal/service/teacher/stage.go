package teacher

import (
	"context"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

// Stage names a pipeline step.
type Stage string

const (
	StageValidate        Stage = "validate"
	StageFetchDictionary Stage = "fetch_dictionary"
	StageEnhance         Stage = "enhance"
	StageFormat          Stage = "format"
)

func (s Stage) String() string { return string(s) }

// Outcome tells the caller how a run ended. A zero Stage means success;
// otherwise Stage is where the run failed and Kind classifies the error.
// Kind is empty for failures outside the error taxonomy, such as a
// recovered panic.
type Outcome struct {
	Stage Stage
	Kind  domain.ErrorKind
}

// Failed reports whether the run produced a failure envelope.
func (o Outcome) Failed() bool { return o.Stage != "" }

// stageContext carries data forward between stages. Stages receive it by
// value and return an extended copy.
type stageContext struct {
	raw      domain.RawRequest
	request  domain.WordRequest
	entries  []domain.LexicalEntry
	phonetic domain.PhoneticChoice
	content  domain.EnhancedContent
	response domain.TeachingResponse
}

type stage struct {
	name   Stage
	prefix string
	run    func(ctx context.Context, sc stageContext) (stageContext, error)
}

func (s *Service) stages() []stage {
	return []stage{
		{name: StageValidate, prefix: "validate", run: s.validate},
		{name: StageFetchDictionary, prefix: "fetch dictionary", run: s.fetchDictionary},
		{name: StageEnhance, prefix: "enhance content", run: s.enhance},
		{name: StageFormat, prefix: "format response", run: s.format},
	}
}

func (s *Service) validate(_ context.Context, sc stageContext) (stageContext, error) {
	req, err := ValidateRequest(sc.raw)
	if err != nil {
		return sc, err
	}
	sc.request = req
	return sc, nil
}

func (s *Service) fetchDictionary(ctx context.Context, sc stageContext) (stageContext, error) {
	entries, err := s.dictionary.Lookup(ctx, sc.request.Word)
	if err != nil {
		return sc, err
	}
	sc.entries = domain.ProcessEntries(entries)
	sc.phonetic = domain.EntriesPhonetic(sc.entries)
	return sc, nil
}

func (s *Service) enhance(ctx context.Context, sc stageContext) (stageContext, error) {
	content, err := s.enhancer.Enhance(ctx, sc.entries, sc.request)
	if err != nil {
		return sc, err
	}
	sc.content = content
	return sc, nil
}

func (s *Service) format(_ context.Context, sc stageContext) (stageContext, error) {
	sc.response = domain.NewSuccessResponse(sc.request, sc.entries, sc.content, s.now())
	return sc, nil
}
