package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInterestRateLoader struct{ mock.Mock }

func (m *MockInterestRateLoader) LoadInterestRates(ctx context.Context) (Coverage, error) {
	args := m.Called(ctx)
	coverage, _ := args.Get(0).(Coverage)
	return coverage, args.Error(1)
}

func TestReloadInterestRates_Success(t *testing.T) {
	loader := new(MockInterestRateLoader)
	loader.On("LoadInterestRates", mock.Anything).
		Return(Coverage{From: epoch, To: feb1}, nil).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
		}).Once()

	err := ReloadInterestRates(context.Background(), "exec-1", loader)

	require.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestReloadInterestRates_Error(t *testing.T) {
	loader := new(MockInterestRateLoader)
	loader.On("LoadInterestRates", mock.Anything).Return(Coverage{}, errors.New("db unavailable")).Once()

	err := ReloadInterestRates(context.Background(), "exec-2", loader)

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to reload interest rates")
	loader.AssertExpectations(t)
}

func TestReloadInterestRates_ThroughService(t *testing.T) {
	source := new(MockInterestRateSource)
	source.On("Load", mock.Anything).Return(fixtureTable(t), nil).Once()
	svc := NewService(source, nil)

	require.NoError(t, ReloadInterestRates(context.Background(), "exec-3", svc))

	view, err := svc.OvernightRate("AUDUSD", time.Unix(0, 0).UTC())
	require.NoError(t, err)
	require.Equal(t, -8.52054794520548e-05, view.Rate)
}
