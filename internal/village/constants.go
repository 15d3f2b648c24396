package village

// DefaultMaxRetries bounds the reload-and-retry loop after a lost version check
const DefaultMaxRetries = 5

// Log messages
const (
	LogMsgVersionConflict  = "Village resources changed concurrently, retrying reconciliation"
	LogMsgRetriesExhausted = "Village reconciliation retries exhausted"
	LogMsgResourcesAccrued = "Village resources accrued"
	LogMsgVillageRenamed   = "Village renamed"
)
