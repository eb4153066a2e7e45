package pawn

import "fmt"

// NetRole is a pawn's network role on one end of a connection.
type NetRole uint8

const (
	RoleNone NetRole = iota
	RoleSimulatedProxy
	RoleAutonomousProxy
	RoleAuthority
)

var roleNames = [...]string{
	RoleNone:            "none",
	RoleSimulatedProxy:  "simulated_proxy",
	RoleAutonomousProxy: "autonomous_proxy",
	RoleAuthority:       "authority",
}

func (r NetRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("NetRole(%d)", r)
}

// ParseNetRole converts a role name such as "authority" to a NetRole.
func ParseNetRole(s string) (NetRole, error) {
	for i, name := range roleNames {
		if name == s {
			return NetRole(i), nil
		}
	}
	return RoleNone, fmt.Errorf("unknown net role %q", s)
}
