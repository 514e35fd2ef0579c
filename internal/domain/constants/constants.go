package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for order events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Mail providers
const (
	MailProviderSendGrid = "sendgrid"
)

// Event attributes
const (
	EventTypeOrderCreated = "order.created"
	AttributeEventType    = "event_type"
	AttributeRequestID    = "request_id"
)

const (
	DefaultPaymentMethod  = "MP_TRANSFER"
	PaymentStatusApproved = "approved"
)
