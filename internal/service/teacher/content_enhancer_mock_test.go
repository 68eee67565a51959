package teacher

import (
	"context"
	"sync"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

var _ contentEnhancer = &contentEnhancerMock{}

type contentEnhancerMock struct {
	EnhanceFunc func(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error)

	calls struct {
		Enhance []struct {
			Ctx     context.Context
			Entries []domain.LexicalEntry
			Req     domain.WordRequest
		}
	}
	lockEnhance sync.RWMutex
}

func (mock *contentEnhancerMock) Enhance(ctx context.Context, entries []domain.LexicalEntry, req domain.WordRequest) (domain.EnhancedContent, error) {
	if mock.EnhanceFunc == nil {
		panic("contentEnhancerMock.EnhanceFunc: method is nil but contentEnhancer.Enhance was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.LexicalEntry
		Req     domain.WordRequest
	}{Ctx: ctx, Entries: entries, Req: req}
	mock.lockEnhance.Lock()
	mock.calls.Enhance = append(mock.calls.Enhance, callInfo)
	mock.lockEnhance.Unlock()
	return mock.EnhanceFunc(ctx, entries, req)
}

func (mock *contentEnhancerMock) EnhanceCalls() []struct {
	Ctx     context.Context
	Entries []domain.LexicalEntry
	Req     domain.WordRequest
} {
	mock.lockEnhance.RLock()
	calls := mock.calls.Enhance
	mock.lockEnhance.RUnlock()
	return calls
}
