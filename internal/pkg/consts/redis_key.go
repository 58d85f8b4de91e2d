package consts

const (
	StatsFreshKey    = "stats:fresh:"
	StatsSessionKey  = "auth:session:"
	OrderReceiptKey  = "order:receipt:"
	SnapshotDirtyKey = "stats:snapshot:dirty"
)

const (
	SubscriptionLock = "lock:subscription:"
	SnapshotLock     = "lock:snapshot:"
)
