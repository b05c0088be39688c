// server/internal/events/events.go
package events

import "taller-api-server/internal/models"

// Kind identifies what happened to a work order.
type Kind string

const (
	KindAssignment    Kind = "ASSIGNMENT"
	KindStatusChanged Kind = "STATUS_CHANGED"
	KindLogRecorded   Kind = "LOG_RECORDED"
	KindChangeRequest Kind = "CHANGE_REQUEST"
	KindQualityResult Kind = "QUALITY_RESULT"
	KindOrderFinished Kind = "ORDER_FINISHED"
	KindDelay         Kind = "DELAY"
)

// Event is the payload handed to every subscribed reactor. Order is a
// snapshot taken after the transition; reactors must not mutate it.
type Event struct {
	Kind          Kind
	Order         *models.WorkOrder
	PreviousState models.OrderState
	NewState      models.OrderState
	Sender        string // profileID of the actor, empty for system events
	Message       string
	Result        models.QualityResult // set for KindQualityResult
}
