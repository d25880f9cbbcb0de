package constvars

const (
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM     = `^\d{2}:\d{2}$`
)
