// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	enginemock "github.com/foolchen/lifeRestart/internal/engine/mock"
	"github.com/foolchen/lifeRestart/internal/entities"
)

// ExpectCatalogParsing allows any number of ExtractMaxTriggers calls, all returning 1
func ExpectCatalogParsing(mockEngine *enginemock.MockEngine) {
	mockEngine.EXPECT().
		ExtractMaxTriggers(gomock.Any()).
		Return(1).
		AnyTimes()
}

// ExpectNoRateBonus makes every GetRate lookup return no multipliers
func ExpectNoRateBonus(mockEngine *enginemock.MockEngine) {
	mockEngine.EXPECT().
		GetRate(gomock.Any(), gomock.Any()).
		Return(map[entities.Grade]float64(nil)).
		AnyTimes()
}
