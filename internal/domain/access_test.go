package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testOrder() *RentalOrder {
	return &RentalOrder{ID: 1, TenantID: 1, LandlordID: 10}
}

func TestIsParticipant(t *testing.T) {
	order := testOrder()

	assert.True(t, IsParticipant(&User{ID: 1, Role: RoleTenant}, order))
	assert.True(t, IsParticipant(&User{ID: 10, Role: RoleLandlord}, order))
	assert.True(t, IsParticipant(&User{ID: 99, Role: RoleAdmin}, order))
	assert.False(t, IsParticipant(&User{ID: 55, Role: RoleTenant}, order))
}

func TestCanRequestTermination(t *testing.T) {
	order := testOrder()

	assert.True(t, CanRequestTermination(&User{ID: 1, Role: RoleTenant}, order))
	assert.True(t, CanRequestTermination(&User{ID: 10, Role: RoleLandlord}, order))
	// An admin who is not a party to the order cannot open a request.
	assert.False(t, CanRequestTermination(&User{ID: 99, Role: RoleAdmin}, order))
	assert.False(t, CanRequestTermination(&User{ID: 55, Role: RoleTenant}, order))
}

func TestCanResolveTermination(t *testing.T) {
	requester := int64(1)
	order := testOrder()
	order.TerminationStatus = TerminationRequested
	order.TerminationRequesterID = &requester

	// The counterpart resolves; the requester never resolves their own.
	assert.True(t, CanResolveTermination(&User{ID: 10, Role: RoleLandlord}, order))
	assert.False(t, CanResolveTermination(&User{ID: 1, Role: RoleTenant}, order))
	assert.True(t, CanResolveTermination(&User{ID: 99, Role: RoleAdmin}, order))
	assert.False(t, CanResolveTermination(&User{ID: 55, Role: RoleTenant}, order))

	// An admin who is a party to the order may request, so the
	// requester-exclusion must bind admins too.
	assert.False(t, CanResolveTermination(&User{ID: 1, Role: RoleAdmin}, order))
}

func TestOrderClosed(t *testing.T) {
	order := testOrder()
	for status, closed := range map[OrderStatus]bool{
		OrderStatusPending:    false,
		OrderStatusConfirmed:  false,
		OrderStatusActive:     false,
		OrderStatusCancelled:  true,
		OrderStatusTerminated: true,
	} {
		order.Status = status
		assert.Equal(t, closed, order.Closed(), "status %s", status)
	}
}
