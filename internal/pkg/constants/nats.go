package constants

// NATS Subjects
const (
	// Telemetry ingestion: device gateways publish raw fixes here
	SubjectTelemetryFix = "telemetry.fix"

	// Queue group for fix consumers so only one instance applies a fix
	QueueGroupTelemetry = "telemetry-ingest"

	// Notification sink: every deduped alert is published here for the
	// external delivery workers (email/SMS/in-app)
	SubjectNotifyDeliver = "notify.deliver"
)
