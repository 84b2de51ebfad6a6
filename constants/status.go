package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User roles
const (
	RoleGuest        = 0
	RoleSuperAdmin   = 1
	RoleAdmin        = 2
	RoleReceptionist = 3
)

// Room catalog status. Coarse on/off switch for a room; date-range
// availability is derived from the bookings table, never stored here.
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusMaintenance = 2
)

// Room types
const (
	RoomTypeStandard = 0
	RoomTypeDeluxe   = 1
	RoomTypeSuite    = 2
	RoomTypePremium  = 3
)

// Payment status
const (
	PaymentStatusPending   = 0
	PaymentStatusSucceeded = 1
	PaymentStatusFailed    = 2
	PaymentStatusRefunded  = 3
)

// Refund status
const (
	RefundStatusNone      = 0
	RefundStatusRequested = 1
	RefundStatusPending   = 2
	RefundStatusPartial   = 3
	RefundStatusCompleted = 4
)

// Payment lifecycle events delivered by the provider
const (
	PaymentEventSucceeded       = "payment_succeeded"
	PaymentEventFailed          = "payment_failed"
	PaymentEventRefundCompleted = "refund_completed"
)
