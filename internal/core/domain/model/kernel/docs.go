// Package kernel provides the shared value objects of the dispatch domain:
// numeric order and actor identifiers, actor roles and the authenticated
// Principal, the customer-facing TrackingID, and the validated Address,
// Contact, and Window value objects carried by every order.
//
// All types in this package are immutable value objects. Zero values are
// invalid and fail validation; instances must be created through the
// provided constructor functions.
package kernel
