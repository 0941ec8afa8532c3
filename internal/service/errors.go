package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired - операция требует аутентифицированного пользователя
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
)

// Stage - этап анализа точки
type Stage string

const (
	StageIdle           Stage = "idle"
	StageAuthenticating Stage = "authenticating"
	StageCacheCheck     Stage = "cache-check"
	StageFetching       Stage = "fetching-environmental"
	StageGenerating     Stage = "generating-recommendation"
	StagePersisting     Stage = "persisting"
	StageDone           Stage = "done"
	StageFailed         Stage = "failed"
)

// AnalysisError - анализ прерван на этапе Stage
type AnalysisError struct {
	Stage Stage
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("service: analysis failed at %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
