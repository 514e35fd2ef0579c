package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

// PushMessage is the body Google Pub/Sub posts to push endpoints. The local provider sends the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an order event the way a push subscription would deliver it.
func NewPushMessage(event *service.OrderCreatedEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = strconv.FormatInt(event.OrderID, 10)
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// DecodeOrderCreated extracts the order event from a push message.
func (m *PushMessage) DecodeOrderCreated() (*service.OrderCreatedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.OrderCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse order event")
	}

	return &event, nil
}
