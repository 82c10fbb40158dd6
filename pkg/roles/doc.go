// Package roles provides helpers for the flat capability sets attached to
// authenticated sessions.
//
// Roles arrive from the identity provider as opaque strings (Discord
// guild role names in the payroll backend) and carry no hierarchy or
// wildcard semantics: a user either holds a role or does not. The
// helpers here normalize, serialize and test membership on such sets.
//
// # Usage
//
//	rs := roles.Parse("OrgLeader,Payroll")
//	if !roles.HasAny(rs, []string{"Payroll", "Admin"}) {
//	    // authorization failure
//	}
package roles
