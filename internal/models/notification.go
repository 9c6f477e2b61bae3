package models

import "encoding/json"

// Event is the payload of an event-typed notification.
type Event struct {
	EventName        string    `json:"eventName"`
	EventLocation    string    `json:"eventLocation"`
	EventDateTime    Timestamp `json:"eventDateTime"`
	EventDescription string    `json:"eventDescription"`
}

type Notification struct {
	ID        int64     `json:"notificationId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`            // True if user viewed it
	Event     *Event    `json:"event,omitempty"` // Set for event announcements
	CreatedAt Timestamp `json:"createdAt"`
}

// IsEvent reports whether the notification supports the detail view.
func (n Notification) IsEvent() bool {
	return n.Event != nil
}

// UnmarshalJSON accepts "id" when the server omits "notificationId".
func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	var raw struct {
		alias
		FallbackID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Notification(raw.alias)
	if n.ID == 0 {
		n.ID = raw.FallbackID
	}
	return nil
}
