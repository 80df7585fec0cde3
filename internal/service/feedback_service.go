package service

import (
	"context"
	"fmt"
	"time"

	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/internal/pkg/mailer"
	"it-helpdesk-be/internal/repository/contract"
	"it-helpdesk-be/pkg/events"

	"github.com/google/uuid"
)

const escalationRatingThreshold = 2

type IFeedbackService interface {
	Submit(ctx context.Context, request *dto.FeedbackRequest) *dto.FeedbackResponse
}

type feedbackService struct {
	feedbackRepo contract.IFeedbackRepository
	emailService mailer.IEmailService // nil when SMTP is not configured
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewFeedbackService(
	feedbackRepo contract.IFeedbackRepository,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		emailService: emailService,
		publisher:    publisher,
		logger:       log,
	}
}

// Submit accepts any feedback payload. Low ratings and explicit
// escalations additionally notify the support mailbox when mail is
// configured; a mail failure never fails the submission.
func (fs *feedbackService) Submit(ctx context.Context, request *dto.FeedbackRequest) *dto.FeedbackResponse {
	feedback := &entity.Feedback{
		Id:        fmt.Sprintf("feedback-%s", uuid.NewString()),
		Type:      request.Type,
		Content:   request.Content,
		Rating:    request.Rating,
		Feature:   request.Feature,
		CreatedAt: time.Now(),
	}

	fs.feedbackRepo.Save(feedback)

	fs.logger.Info("Feedback", "Feedback received", map[string]interface{}{
		"id":      feedback.Id,
		"type":    feedback.Type,
		"rating":  feedback.Rating,
		"feature": feedback.Feature,
	})

	fs.publisher.PublishActivity(ctx, events.NewActivity(events.TypeFeedbackReceived, map[string]interface{}{
		"id":      feedback.Id,
		"feature": feedback.Feature,
	}))

	if fs.needsEscalation(feedback) {
		go func() {
			if err := fs.emailService.SendEscalation(feedback); err != nil {
				fs.logger.Warn("Feedback", "Escalation mail failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	return &dto.FeedbackResponse{
		Message: "Feedback received successfully",
		Id:      feedback.Id,
	}
}

func (fs *feedbackService) needsEscalation(feedback *entity.Feedback) bool {
	if fs.emailService == nil {
		return false
	}
	return feedback.Type == "escalation" || (feedback.Rating > 0 && feedback.Rating <= escalationRatingThreshold)
}
