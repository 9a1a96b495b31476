package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

func validLeadInput() SubmitLeadInput {
	return SubmitLeadInput{
		StudentName: "A",
		FatherName:  "B",
		City:        "C",
		State:       "D",
		Phone:       "123",
		Email:       "a@b.com",
		Class:       "X",
	}
}

func TestSubmitLeadSuccess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	repo := new(MockLeadRepository)
	events := new(MockLeadEventPublisher)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.Lead")).Return(nil)
	events.On("PublishLeadSubmitted", mock.Anything, mock.MatchedBy(func(n entity.LeadNotification) bool {
		return n.StudentName == "A" && n.Class == "X" && n.LeadID != ""
	})).Return(nil)

	uc := NewSubmitLeadUseCase(repo, events, zap.NewNop())
	uc.Now = func() time.Time { return now }

	lead, err := uc.Execute(ctx, validLeadInput())

	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, now, lead.Date)
	assert.Equal(t, "a@b.com", lead.Email)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSubmitLeadTrimsInput(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	in := validLeadInput()
	in.StudentName = "  Aarav  "
	in.Message = "  hi "

	lead, err := NewSubmitLeadUseCase(repo, nil, zap.NewNop()).Execute(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, "Aarav", lead.StudentName)
	assert.Equal(t, "hi", lead.Message)
}

func TestSubmitLeadMissingFields(t *testing.T) {
	required := map[string]func(*SubmitLeadInput){
		"studentName": func(in *SubmitLeadInput) { in.StudentName = "" },
		"fatherName":  func(in *SubmitLeadInput) { in.FatherName = "" },
		"city":        func(in *SubmitLeadInput) { in.City = "   " },
		"state":       func(in *SubmitLeadInput) { in.State = "" },
		"phone":       func(in *SubmitLeadInput) { in.Phone = "" },
		"email":       func(in *SubmitLeadInput) { in.Email = "" },
		"class":       func(in *SubmitLeadInput) { in.Class = "\t" },
	}

	for field, blank := range required {
		t.Run(field, func(t *testing.T) {
			repo := new(MockLeadRepository)
			events := new(MockLeadEventPublisher)
			uc := NewSubmitLeadUseCase(repo, events, zap.NewNop())

			in := validLeadInput()
			blank(&in)

			lead, err := uc.Execute(context.Background(), in)

			assert.Nil(t, lead)
			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, CodeValidation, de.Code)
			require.Len(t, de.Fields, 1)
			assert.Equal(t, field, de.Fields[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			events.AssertNotCalled(t, "PublishLeadSubmitted", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitLeadReportsEveryMissingField(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewSubmitLeadUseCase(repo, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), SubmitLeadInput{Message: "only a message"})

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Fields, 7)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitLeadInvalidEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	in := validLeadInput()
	in.Email = "not-an-email"

	_, err := NewSubmitLeadUseCase(repo, nil, zap.NewNop()).Execute(context.Background(), in)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "email", de.Fields[0].Field)
	assert.Equal(t, "is invalid", de.Fields[0].Message)
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	events := new(MockLeadEventPublisher)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := NewSubmitLeadUseCase(repo, events, zap.NewNop()).Execute(ctx, validLeadInput())

	assert.True(t, IsTechnicalError(err))
	events.AssertNotCalled(t, "PublishLeadSubmitted", mock.Anything, mock.Anything)
}

func TestSubmitLeadPublishFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	events := new(MockLeadEventPublisher)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	events.On("PublishLeadSubmitted", mock.Anything, mock.Anything).Return(errors.New("broker unreachable"))

	lead, err := NewSubmitLeadUseCase(repo, events, zap.NewNop()).Execute(ctx, validLeadInput())

	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	events.AssertExpectations(t)
}
