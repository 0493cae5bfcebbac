// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	progressionmock "github.com/KirkDiggler/rpg-progression/internal/repositories/progression/mock"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

// ExpectMobileGet sets up a mock expectation for loading a mobile
func ExpectMobileGet(
	ctx context.Context, mockRepo *progressionmock.MockRepository,
	mobileID string, mobile *entities.Mobile, err error,
) *gomock.Call {
	var out *progressionrepo.GetOutput
	if err == nil {
		out = &progressionrepo.GetOutput{Mobile: mobile}
	}
	return mockRepo.EXPECT().
		Get(ctx, progressionrepo.GetInput{ID: mobileID}).
		Return(out, err)
}

// ExpectMobileCreate sets up a mock expectation for creating a mobile
func ExpectMobileCreate(ctx context.Context, mockRepo *progressionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressionrepo.CreateInput) (*progressionrepo.CreateOutput, error) {
			// Simulate repository behavior - it would set timestamps
			if input.Mobile.CreatedAt.IsZero() {
				input.Mobile.CreatedAt = testutils.TestEpoch
			}
			input.Mobile.UpdatedAt = testutils.TestEpoch
			return &progressionrepo.CreateOutput{Mobile: input.Mobile}, nil
		})
}

// ExpectMobileUpdate sets up a mock expectation for saving a mobile
func ExpectMobileUpdate(ctx context.Context, mockRepo *progressionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressionrepo.UpdateInput) (*progressionrepo.UpdateOutput, error) {
			input.Mobile.UpdatedAt = testutils.TestEpoch
			return &progressionrepo.UpdateOutput{Mobile: input.Mobile}, nil
		})
}

// ExpectMobileDelete sets up a mock expectation for deleting a mobile
func ExpectMobileDelete(ctx context.Context, mockRepo *progressionmock.MockRepository, mobileID string, err error) {
	var out *progressionrepo.DeleteOutput
	if err == nil {
		out = &progressionrepo.DeleteOutput{}
	}
	mockRepo.EXPECT().
		Delete(ctx, progressionrepo.DeleteInput{ID: mobileID}).
		Return(out, err)
}
