package constvars

const (
	ResponseUnknown = "unknown"

	SignupVerificationPendingMessage = "signup successful, please check your email to verify your account"
	HealthStatusOK                   = "ok"
)
