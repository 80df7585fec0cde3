package contract

import "it-helpdesk-be/internal/entity"

// IFeedbackRepository holds submitted feedback for the lifetime of the
// process only. Durable storage is out of scope.
type IFeedbackRepository interface {
	Save(feedback *entity.Feedback)
	Get(id string) (*entity.Feedback, bool)
}
