package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/pagination"
)

func TestSubmitRequest_Validation(t *testing.T) {
	svc := NewRequestService(&mockRequestRepo{})

	_, err := svc.Submit(context.Background(), &SubmitRequestInput{
		BloodGroup:    "B+",
		ContactNumber: "01800000000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Submit(context.Background(), &SubmitRequestInput{
		PatientName:   "Patient",
		ContactNumber: "01800000000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Submit(context.Background(), &SubmitRequestInput{
		PatientName: "Patient",
		BloodGroup:  "B+",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSubmitRequest_StartsIncomplete(t *testing.T) {
	repo := &mockRequestRepo{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.BloodRequest")).Return(nil)

	svc := NewRequestService(repo)
	request, err := svc.Submit(context.Background(), &SubmitRequestInput{
		PatientName:   "Patient",
		BloodGroup:    "AB-",
		ContactNumber: "01800000000",
		AmountBags:    2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Patient", request.PatientName)
	assert.Nil(t, request.SubmissionTime)
	repo.AssertExpectations(t)
}

func TestCompleteRequest_StampsSubmissionTime(t *testing.T) {
	repo := &mockRequestRepo{}
	at := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	open := &models.BloodRequest{ID: 11, Status: domain.RequestStatusIncomplete}
	done := &models.BloodRequest{ID: 11, Status: domain.RequestStatusDone, SubmissionTime: &at}

	repo.On("GetByID", mock.Anything, uint(11)).Return(open, nil).Once()
	repo.On("Complete", mock.Anything, uint(11), at).Return(int64(1), nil)
	repo.On("GetByID", mock.Anything, uint(11)).Return(done, nil).Once()

	svc := NewRequestService(repo)
	request, err := svc.Complete(context.Background(), 11, &at)

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusDone, request.Status)
	assert.Equal(t, at, *request.SubmissionTime)
	repo.AssertExpectations(t)
}

func TestCompleteRequest_AlreadyDoneRestamps(t *testing.T) {
	repo := &mockRequestRepo{}
	first := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	second := time.Date(2024, 5, 11, 14, 0, 0, 0, time.UTC)

	done := &models.BloodRequest{ID: 12, Status: domain.RequestStatusDone, SubmissionTime: &first}
	restamped := &models.BloodRequest{ID: 12, Status: domain.RequestStatusDone, SubmissionTime: &second}

	repo.On("GetByID", mock.Anything, uint(12)).Return(done, nil).Once()
	repo.On("Complete", mock.Anything, uint(12), second).Return(int64(1), nil)
	repo.On("GetByID", mock.Anything, uint(12)).Return(restamped, nil).Once()

	svc := NewRequestService(repo)
	request, err := svc.Complete(context.Background(), 12, &second)

	assert.NoError(t, err)
	assert.Equal(t, second, *request.SubmissionTime)
}

func TestCompleteRequest_NotFound(t *testing.T) {
	repo := &mockRequestRepo{}
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewRequestService(repo)
	_, err := svc.Complete(context.Background(), 99, nil)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestListRequests_RejectsUnknownStatus(t *testing.T) {
	svc := NewRequestService(&mockRequestRepo{})
	page, _ := pagination.New(0, 20)

	_, err := svc.ListByStatus(context.Background(), "archived", page)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestListRequests_ByStatus(t *testing.T) {
	repo := &mockRequestRepo{}
	requests := []*models.BloodRequest{
		{ID: 2, Status: domain.RequestStatusDone},
		{ID: 1, Status: domain.RequestStatusDone},
	}

	repo.On("ListByStatus", mock.Anything, domain.RequestStatusDone, 0, 20).
		Return(requests, int64(2), nil)

	svc := NewRequestService(repo)
	page, _ := pagination.New(0, 20)

	output, err := svc.ListByStatus(context.Background(), domain.RequestStatusDone, page)

	assert.NoError(t, err)
	assert.Len(t, output.Requests, 2)
	assert.Equal(t, 1, output.Meta.TotalPages)
}

func TestRemoveRequest_NotFound(t *testing.T) {
	repo := &mockRequestRepo{}
	repo.On("Delete", mock.Anything, uint(7)).Return(int64(0), nil)

	svc := NewRequestService(repo)
	err := svc.Remove(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
