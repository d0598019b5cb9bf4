package consts

const (
	TokenDenyKey = "token:deny:"
)

const (
	LedgerAuditLock = "lock:ledger:audit"
)
