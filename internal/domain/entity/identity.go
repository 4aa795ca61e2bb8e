package entity

// RoleProfile is the tagged union of the two mutually exclusive role-specific
// profiles. The zero value means "no role resolved"; the constructors make the
// illegal states (both profiles set, or a profile paired with the wrong role)
// unrepresentable.
type RoleProfile struct {
	role     Role
	supplier *SupplierProfile
	vendor   *VendorProfile
}

// SupplierRoleProfile builds a RoleProfile for a supplier. A nil profile still
// yields the supplier tag so a missing record surfaces as a degraded identity
// rather than "no role".
func SupplierRoleProfile(p *SupplierProfile) RoleProfile {
	return RoleProfile{role: RoleSupplier, supplier: p}
}

// VendorRoleProfile builds a RoleProfile for a vendor.
func VendorRoleProfile(p *VendorProfile) RoleProfile {
	return RoleProfile{role: RoleVendor, vendor: p}
}

// Role returns the role tag, or the empty Role when nothing is resolved.
func (rp RoleProfile) Role() Role {
	return rp.role
}

// IsZero reports whether no role has been resolved at all.
func (rp RoleProfile) IsZero() bool {
	return rp.role == ""
}

// Incomplete reports whether a role is assigned but the matching role-specific
// record is missing (a degraded identity from a partial signup).
func (rp RoleProfile) Incomplete() bool {
	switch rp.role {
	case RoleSupplier:
		return rp.supplier == nil
	case RoleVendor:
		return rp.vendor == nil
	default:
		return false
	}
}

// Supplier returns the supplier profile when the role is supplier.
func (rp RoleProfile) Supplier() (*SupplierProfile, bool) {
	if rp.role != RoleSupplier || rp.supplier == nil {
		return nil, false
	}

	return rp.supplier, true
}

// Vendor returns the vendor profile when the role is vendor.
func (rp RoleProfile) Vendor() (*VendorProfile, bool) {
	if rp.role != RoleVendor || rp.vendor == nil {
		return nil, false
	}

	return rp.vendor, true
}

// Identity is the fully assembled view of a principal: the base profile plus
// the role branch. Profile may be nil for a provider-side account whose signup
// never completed; RoleProfile may be zero for a roleless principal.
type Identity struct {
	User        *User
	Profile     *Profile
	RoleProfile RoleProfile
}

// Role is a convenience accessor for the resolved role tag.
func (id *Identity) Role() Role {
	if id == nil {
		return ""
	}

	return id.RoleProfile.Role()
}
