package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pedidofacil/internal/core/application/usecases/queries"
	"pedidofacil/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSummaryHandler struct{ mock.Mock }

func (m *MockSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetOrdersSummaryQuery,
) (queries.GetOrdersSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrdersSummaryQueryResponse), args.Error(1)
}

type recordedTotals struct {
	orders, items int64
	value         decimal.Decimal
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedTotals
}

func (r *fakeRecorder) SetStoreTotals(orders, items int64, value decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedTotals{orders: orders, items: items, value: value})
}

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// syncBuffer guards log output written from the cron goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	out := &syncBuffer{}
	return slog.New(slog.NewTextHandler(out, nil)), out
}

func TestOrdersSummaryJob_Run_RecordsAndLogsSummary(t *testing.T) {
	summary := queries.GetOrdersSummaryQueryResponse{
		TotalOrders: 3,
		TotalItems:  12,
		TotalValue:  decimal.RequireFromString("7690"),
	}
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetOrdersSummaryQuery")).Return(summary, nil).Once()
	recorder := &fakeRecorder{}
	logger, out := newTestLogger()

	job := jobs.NewOrdersSummaryJob(handler, recorder, "0 0 * * * *", logger)
	require.NoError(t, job.Run(t.Context()))

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, int64(3), recorder.calls[0].orders)
	assert.Equal(t, int64(12), recorder.calls[0].items)
	assert.True(t, summary.TotalValue.Equal(recorder.calls[0].value))
	assert.Contains(t, out.String(), "total_value=7690.00")
	assert.Contains(t, out.String(), "component=orders_summary_job")
	handler.AssertExpectations(t)
}

func TestOrdersSummaryJob_Run_HandlerError(t *testing.T) {
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrdersSummaryQueryResponse{}, errors.New("db down")).Once()
	recorder := &fakeRecorder{}
	logger, _ := newTestLogger()

	job := jobs.NewOrdersSummaryJob(handler, recorder, "0 0 * * * *", logger)
	err := job.Run(t.Context())

	require.EqualError(t, err, "db down")
	assert.Empty(t, recorder.calls)
}

func TestOrdersSummaryJob_Run_WithoutRecorder(t *testing.T) {
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrdersSummaryQueryResponse{}, nil).Once()
	logger, _ := newTestLogger()

	job := jobs.NewOrdersSummaryJob(handler, nil, "0 0 * * * *", logger)
	require.NoError(t, job.Run(t.Context()))
}

func TestOrdersSummaryJob_Start_InvalidSchedule(t *testing.T) {
	logger, _ := newTestLogger()
	job := jobs.NewOrdersSummaryJob(new(MockSummaryHandler), nil, "every minute", logger)

	require.Error(t, job.Start())
}

func TestOrdersSummaryJob_Start_RunsOnSchedule(t *testing.T) {
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrdersSummaryQueryResponse{TotalOrders: 1}, nil)
	recorder := &fakeRecorder{}
	logger, out := newTestLogger()

	job := jobs.NewOrdersSummaryJob(handler, recorder, "* * * * * *", logger)
	require.NoError(t, job.Start())

	assert.Eventually(t, func() bool { return recorder.count() > 0 }, 3*time.Second, 50*time.Millisecond)

	job.Stop()
	assert.Contains(t, out.String(), "Orders summary job stopped")
}

func TestJobManager_NilJobIsDisabled(t *testing.T) {
	manager := jobs.NewJobManager(nil)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAllPropagatesError(t *testing.T) {
	logger, _ := newTestLogger()
	manager := jobs.NewJobManager(jobs.NewOrdersSummaryJob(new(MockSummaryHandler), nil, "bad", logger))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start orders summary job")
}
