package entity

type UserRole string

const (
	RoleIncidentManager     UserRole = "incident_manager"
	RoleTechnicalSupport    UserRole = "technical_support"
	RoleAccountManager      UserRole = "account_manager"
	RoleExecutive           UserRole = "executive"
	RoleSystemAdministrator UserRole = "system_administrator"
	RoleClientContact       UserRole = "client_contact"
	RoleVendorContact       UserRole = "vendor_contact"
)

// InternalRoles are the roles held by the operator's own staff.
var InternalRoles = []UserRole{
	RoleIncidentManager,
	RoleTechnicalSupport,
	RoleAccountManager,
	RoleExecutive,
	RoleSystemAdministrator,
}

// Departments for internal roles. Contact roles derive their department from the
// organization they belong to, see ClientDepartment and VendorDepartment.
func (r UserRole) Departments() []string {
	switch r {
	case RoleIncidentManager:
		return []string{"Operations", "IT Support", "Technical Operations"}
	case RoleTechnicalSupport:
		return []string{"Technical Support", "Engineering", "IT Operations"}
	case RoleAccountManager:
		return []string{"Account Management", "Customer Success", "Business Development"}
	case RoleExecutive:
		return []string{"Executive", "Management", "Leadership"}
	case RoleSystemAdministrator:
		return []string{"IT Administration", "System Operations", "Infrastructure"}
	}
	return nil
}

func ClientDepartment(industry string) string {
	return industry + " Operations"
}

func VendorDepartment(t VendorType) string {
	return t.Title() + " Support"
}

func (r UserRole) RecipientType() RecipientType {
	switch r {
	case RoleClientContact:
		return RecipientClient
	case RoleExecutive:
		return RecipientExecutive
	case RoleVendorContact:
		return RecipientVendor
	}
	return RecipientInternalTeam
}

func (r UserRole) EscalationLevel() EscalationLevel {
	switch r {
	case RoleTechnicalSupport:
		return EscalationLevelTechnical
	case RoleExecutive:
		return EscalationLevelExecutive
	case RoleVendorContact:
		return EscalationLevelVendor
	}
	return EscalationLevelManagement
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusOnLeave  UserStatus = "on_leave"
)

var Timezones = []string{"EST", "PST", "CST", "MST", "UTC"}

// User belongs to at most one of a client or a vendor; internal staff have neither.
type User struct {
	UserID     string     `json:"user_id"`
	ClientID   *string    `json:"client_id"`
	VendorID   *string    `json:"vendor_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Role       UserRole   `json:"role"`
	Department string     `json:"department"`
	Timezone   string     `json:"timezone"`
	Status     UserStatus `json:"status"`
	CreatedAt  Timestamp  `json:"created_at"`
	UpdatedAt  Timestamp  `json:"updated_at"`
}

func (u User) Key() string { return u.UserID }

func (u User) IsActive() bool { return u.Status == UserStatusActive }

// HasRole reports whether the user holds one of roles.
func (u User) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
