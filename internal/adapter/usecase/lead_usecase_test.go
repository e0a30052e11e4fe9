package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

type leadFixture struct {
	leads    *mocks.MockLeadRepository
	runs     *mocks.MockRunRepository
	uploader *mocks.MockConversionUploader
	uc       *LeadUseCase
	now      time.Time
}

func newLeadFixture(t *testing.T) *leadFixture {
	f := &leadFixture{
		leads:    mocks.NewMockLeadRepository(t),
		runs:     mocks.NewMockRunRepository(t),
		uploader: mocks.NewMockConversionUploader(t),
		now:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	f.uc = NewLeadUseCase(f.leads, f.runs, f.uploader, discardLogger())
	f.uc.now = func() time.Time { return f.now }
	return f
}

func TestTrackCreatesPendingLead(t *testing.T) {
	f := newLeadFixture(t)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(&domain.CampaignRun{ID: "run-1"}, nil)
	f.leads.EXPECT().CreateLead(mock.Anything, mock.MatchedBy(func(l *domain.Lead) bool {
		return l.RunID == "run-1" && l.GCLID == "abc" && l.Email == "pat@example.com" && l.Status == domain.LeadPending
	})).Return(nil)

	lead, err := f.uc.Track(context.Background(), domain.LeadEvent{RunID: "run-1", GCLID: " abc ", Email: "pat@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, f.now, lead.CreatedAt)
}

func TestTrackValidatesRun(t *testing.T) {
	f := newLeadFixture(t)

	_, err := f.uc.Track(context.Background(), domain.LeadEvent{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.runs.EXPECT().GetRun(mock.Anything, "gone").Return(nil, domain.ErrNotFound)
	_, err = f.uc.Track(context.Background(), domain.LeadEvent{RunID: "gone"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookUploadsConversionOnce(t *testing.T) {
	f := newLeadFixture(t)
	lead := &domain.Lead{ID: "lead-1", RunID: "run-1", GCLID: "abc", Status: domain.LeadBooked, BookedAt: &f.now}
	f.leads.EXPECT().MarkBooked(mock.Anything, "lead-1", f.now).Return(true, nil).Once()
	f.leads.EXPECT().MarkBooked(mock.Anything, "lead-1", f.now).Return(false, nil).Once()
	f.leads.EXPECT().GetLead(mock.Anything, "lead-1").Return(lead, nil)
	f.uploader.EXPECT().Upload("abc", f.now).Once()

	for range 2 {
		got, err := f.uc.Book(context.Background(), "lead-1")
		require.NoError(t, err)
		assert.Equal(t, domain.LeadBooked, got.Status)
	}
}

func TestBookWithoutClickIDSkipsUpload(t *testing.T) {
	f := newLeadFixture(t)
	f.leads.EXPECT().MarkBooked(mock.Anything, "lead-1", f.now).Return(true, nil)
	f.leads.EXPECT().GetLead(mock.Anything, "lead-1").Return(&domain.Lead{ID: "lead-1", Status: domain.LeadBooked}, nil)

	_, err := f.uc.Book(context.Background(), "lead-1")
	require.NoError(t, err)
	f.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestBookUnknownLead(t *testing.T) {
	f := newLeadFixture(t)
	f.leads.EXPECT().MarkBooked(mock.Anything, "nope", f.now).Return(false, domain.ErrNotFound)

	_, err := f.uc.Book(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
