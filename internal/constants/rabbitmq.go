package constants

// Топология RabbitMQ для событий модерации.
const (
	AdEventsExchange     = "ad-events"
	AdEventsExchangeType = "topic"

	AdApprovedRoutingKey = "ad.approved"

	AdApprovedEventType    = "AdApprovedEvent"
	AdApprovedEventVersion = "1.0.0"
)
