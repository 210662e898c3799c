package transfer

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services/fee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	transfers  []models.TransferDetail
	total      int64
	lastLimit  int
	lastOffset int
	lastStatus string
	byID       map[uint]*models.TransferDetail
}

func (r *stubReader) ListByUser(ctx context.Context, userID uint, limit, offset int, status string) ([]models.TransferDetail, int64, error) {
	r.lastLimit, r.lastOffset, r.lastStatus = limit, offset, status
	return r.transfers, r.total, nil
}

func (r *stubReader) GetByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error) {
	return r.byID[transferID], nil
}

func (r *stubReader) Recent(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error) {
	r.lastLimit = limit
	if limit > len(r.transfers) {
		limit = len(r.transfers)
	}
	return r.transfers[:limit], nil
}

func newQueryService(reader *stubReader) Service {
	return NewService(newFakeStore(), reader, fee.NewCalculator(), &fakePinVerifier{}, nil, Config{})
}

func TestGetTransfersByUser_Pagination(t *testing.T) {
	reader := &stubReader{total: 12}
	svc := newQueryService(reader)

	_, page, err := svc.GetTransfersByUser(context.Background(), 1, 2, 5, "completed")
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, int64(3), page.Pages, "pages = ceil(total/limit)")

	assert.Equal(t, 5, reader.lastLimit)
	assert.Equal(t, 5, reader.lastOffset)
	assert.Equal(t, "completed", reader.lastStatus)
}

func TestGetTransfersByUser_Defaults(t *testing.T) {
	reader := &stubReader{}
	svc := newQueryService(reader)

	_, page, err := svc.GetTransfersByUser(context.Background(), 1, 0, -3, "")
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 0, reader.lastOffset)
}

func TestGetTransferByID(t *testing.T) {
	detail := &models.TransferDetail{TransferID: 7, Status: "completed", OccurredAt: time.Now()}
	reader := &stubReader{byID: map[uint]*models.TransferDetail{7: detail}}
	svc := newQueryService(reader)

	got, err := svc.GetTransferByID(context.Background(), 7, 1)
	require.NoError(t, err)
	require.NotNil(t, got)

	// repeated reads return identical data
	again, err := svc.GetTransferByID(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	// absence is nil, not an error
	missing, err := svc.GetTransferByID(context.Background(), 404, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetRecentTransfers_LimitFallback(t *testing.T) {
	reader := &stubReader{transfers: make([]models.TransferDetail, 20)}
	svc := newQueryService(reader)

	recent, err := svc.GetRecentTransfers(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 5, "zero limit falls back to the default of 5")
}

func TestGetRecentTransfers_LimitClamped(t *testing.T) {
	reader := &stubReader{transfers: make([]models.TransferDetail, 20)}
	svc := newQueryService(reader)

	_, err := svc.GetRecentTransfers(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.Equal(t, 100, reader.lastLimit, "oversized limit is clamped, not reset")

	_, err = svc.GetRecentTransfers(context.Background(), 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, reader.lastLimit, "in-range limit passes through")
}
