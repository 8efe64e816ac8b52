package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CouponEvent announces that a command changed the coupon stash.
// Consumers only learn which command ran and on which coupon; the stash
// itself stays in local storage.
type CouponEvent struct {
	ID          string    `json:"id"`
	CommandWord string    `json:"command_word"`
	CouponName  string    `json:"coupon_name,omitempty"`
	Feedback    string    `json:"feedback"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewCouponEvent creates an event stamped with a fresh ID and the current time.
func NewCouponEvent(commandWord, couponName, feedback string) *CouponEvent {
	return &CouponEvent{
		ID:          uuid.NewString(),
		CommandWord: commandWord,
		CouponName:  couponName,
		Feedback:    feedback,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *CouponEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// CouponEventFromJSON decodes an event from JSON bytes
func CouponEventFromJSON(data []byte) (*CouponEvent, error) {
	var evt CouponEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}
