package teacher

import (
	"context"
	"sync"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

var _ dictionaryClient = &dictionaryClientMock{}

type dictionaryClientMock struct {
	LookupFunc func(ctx context.Context, word string) ([]domain.LexicalEntry, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryClientMock) Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryClientMock.LookupFunc: method is nil but dictionaryClient.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *dictionaryClientMock) LookupCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
