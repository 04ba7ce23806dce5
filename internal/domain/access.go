package domain

// Authorization predicates shared by the order lifecycle and the
// termination workflow. All of them are pure functions over loaded
// entities; persistence stays out of the policy.

// IsParticipant reports whether user may act on the order at all. Admins
// count as participants everywhere for read and resolution purposes.
func IsParticipant(user *User, order *RentalOrder) bool {
	if user.Role == RoleAdmin {
		return true
	}
	return user.ID == order.TenantID || user.ID == order.LandlordID
}

func IsTenantOf(user *User, order *RentalOrder) bool {
	return user.ID == order.TenantID
}

func IsLandlordOf(user *User, order *RentalOrder) bool {
	return user.ID == order.LandlordID
}

// CanRequestTermination is stricter than IsParticipant: only the actual
// tenant or landlord may open a request, never an admin acting on a
// foreign order.
func CanRequestTermination(user *User, order *RentalOrder) bool {
	if user.Role == RoleAdmin {
		return user.ID == order.TenantID || user.ID == order.LandlordID
	}
	return IsParticipant(user, order)
}

// CanResolveTermination allows the counterpart of the requester, or an
// admin. The requester-exclusion binds everyone: an admin who is party to
// the order may open a request, so nobody resolves their own.
func CanResolveTermination(user *User, order *RentalOrder) bool {
	if order.TerminationRequesterID != nil && *order.TerminationRequesterID == user.ID {
		return false
	}
	if user.Role == RoleAdmin {
		return true
	}
	return IsParticipant(user, order)
}
