package teacher

import (
	"sync"
	"time"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ObserveRunFunc   func(failedStage string, kind domain.ErrorKind)
	ObserveStageFunc func(stage string, d time.Duration, err error)

	calls struct {
		ObserveRun []struct {
			FailedStage string
			Kind        domain.ErrorKind
		}
		ObserveStage []struct {
			Stage string
			D     time.Duration
			Err   error
		}
	}
	lockObserveRun   sync.RWMutex
	lockObserveStage sync.RWMutex
}

func (mock *recorderMock) ObserveRun(failedStage string, kind domain.ErrorKind) {
	callInfo := struct {
		FailedStage string
		Kind        domain.ErrorKind
	}{FailedStage: failedStage, Kind: kind}
	mock.lockObserveRun.Lock()
	mock.calls.ObserveRun = append(mock.calls.ObserveRun, callInfo)
	mock.lockObserveRun.Unlock()
	if mock.ObserveRunFunc != nil {
		mock.ObserveRunFunc(failedStage, kind)
	}
}

func (mock *recorderMock) ObserveRunCalls() []struct {
	FailedStage string
	Kind        domain.ErrorKind
} {
	mock.lockObserveRun.RLock()
	calls := mock.calls.ObserveRun
	mock.lockObserveRun.RUnlock()
	return calls
}

func (mock *recorderMock) ObserveStage(stage string, d time.Duration, err error) {
	callInfo := struct {
		Stage string
		D     time.Duration
		Err   error
	}{Stage: stage, D: d, Err: err}
	mock.lockObserveStage.Lock()
	mock.calls.ObserveStage = append(mock.calls.ObserveStage, callInfo)
	mock.lockObserveStage.Unlock()
	if mock.ObserveStageFunc != nil {
		mock.ObserveStageFunc(stage, d, err)
	}
}

func (mock *recorderMock) ObserveStageCalls() []struct {
	Stage string
	D     time.Duration
	Err   error
} {
	mock.lockObserveStage.RLock()
	calls := mock.calls.ObserveStage
	mock.lockObserveStage.RUnlock()
	return calls
}
