package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the shipment state of an order's delivery.
//
// State transitions:
//
//	Ready ──> InProgress ──> Completed
//
// The progression is strictly forward: a shipment never returns to an earlier
// state. Completed is the state that blocks order cancellation.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryReady is the initial status: the shipment is prepared but has
	// not left yet.
	DeliveryReady

	// DeliveryInProgress indicates the shipment is on its way.
	DeliveryInProgress

	// DeliveryCompleted indicates the shipment has been delivered.
	// Orders with a completed delivery can no longer be cancelled.
	DeliveryCompleted
)

// getDeliveryStatusStrings returns a map of DeliveryStatus values to their
// string representations.
func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:    "Unknown",
		DeliveryReady:      "Ready",
		DeliveryInProgress: "InProgress",
		DeliveryCompleted:  "Completed",
	}
}

// getValidDeliveryStatusStrings returns a map of only valid DeliveryStatus values.
func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryReady:      "Ready",
		DeliveryInProgress: "InProgress",
		DeliveryCompleted:  "Completed",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the delivery status.
// Implements fmt.Stringer and is safe to call on any DeliveryStatus value.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Advance transitions the delivery status one step forward.
//
// Valid transitions:
//   - Ready -> InProgress
//   - InProgress -> Completed
//
// Completed is final; advancing it returns an error.
func (s DeliveryStatus) Advance() (DeliveryStatus, error) {
	switch s {
	case DeliveryReady:
		return DeliveryInProgress, nil
	case DeliveryInProgress:
		return DeliveryCompleted, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid delivery status to advance", s.String()),
		)
	}
}
