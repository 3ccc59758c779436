package entity

import "strings"

type ProductType string

const (
	ProductTypePaymentProcessing ProductType = "payment_processing"
	ProductTypeBankingSystem     ProductType = "banking_system"
	ProductTypeAPIGateway        ProductType = "api_gateway"
	ProductTypeDataIntegration   ProductType = "data_integration"
	ProductTypeReportingPlatform ProductType = "reporting_platform"
	ProductTypeSecurityService   ProductType = "security_service"
	ProductTypeBackupService     ProductType = "backup_service"
	ProductTypeMonitoringTool    ProductType = "monitoring_tool"
)

func (t ProductType) ComponentTypes() []ComponentType {
	switch t {
	case ProductTypePaymentProcessing:
		return []ComponentType{ComponentPaymentGateway, ComponentAPIEndpoint, ComponentDatabase}
	case ProductTypeBankingSystem:
		return []ComponentType{ComponentDatabase, ComponentAPIEndpoint, ComponentAuthenticationService}
	case ProductTypeAPIGateway:
		return []ComponentType{ComponentAPIEndpoint, ComponentLoadBalancer, ComponentFirewall}
	case ProductTypeDataIntegration:
		return []ComponentType{ComponentSFTPServer, ComponentAPIEndpoint, ComponentDatabase}
	case ProductTypeReportingPlatform:
		return []ComponentType{ComponentDatabase, ComponentAPIEndpoint, ComponentFileStorage}
	case ProductTypeSecurityService:
		return []ComponentType{ComponentFirewall, ComponentAuthenticationService, ComponentMonitoringSystem}
	case ProductTypeBackupService:
		return []ComponentType{ComponentFileStorage, ComponentSFTPServer, ComponentMonitoringSystem}
	case ProductTypeMonitoringTool:
		return []ComponentType{ComponentMonitoringSystem, ComponentAPIEndpoint, ComponentDatabase}
	}
	return nil
}

type ProductStatus string

const (
	ProductStatusActive      ProductStatus = "active"
	ProductStatusMaintenance ProductStatus = "maintenance"
	ProductStatusDeprecated  ProductStatus = "deprecated"
)

type Product struct {
	ProductID       string        `json:"product_id"`
	ProductName     string        `json:"product_name"`
	ProductType     ProductType   `json:"product_type"`
	Version         string        `json:"version"`
	VendorSupportID string        `json:"vendor_support_id"`
	Status          ProductStatus `json:"status"`
	CreatedAt       Timestamp     `json:"created_at"`
	UpdatedAt       Timestamp     `json:"updated_at"`
}

func (p Product) Key() string { return p.ProductID }

// Brand is the first word of the product name, reused for component names.
func (p Product) Brand() string {
	if i := strings.IndexByte(p.ProductName, ' '); i >= 0 {
		return p.ProductName[:i]
	}
	return p.ProductName
}

type ComponentType string

const (
	ComponentPaymentGateway        ComponentType = "payment_gateway"
	ComponentAPIEndpoint           ComponentType = "api_endpoint"
	ComponentDatabase              ComponentType = "database"
	ComponentAuthenticationService ComponentType = "authentication_service"
	ComponentLoadBalancer          ComponentType = "load_balancer"
	ComponentFirewall              ComponentType = "firewall"
	ComponentSFTPServer            ComponentType = "sftp_server"
	ComponentFileStorage           ComponentType = "file_storage"
	ComponentMonitoringSystem      ComponentType = "monitoring_system"
)

var (
	CloudRegions = []string{"aws-us-east-1", "aws-us-west-2", "gcp-europe-west3", "azure-centralus", "aws-ap-southeast-1"}
	Datacenters  = []string{"NYC-DC1", "SFO-DC2", "LON-DC3", "FRA-DC4", "SGP-DC5"}
)

// Locations lists where a component of this type may be hosted.
func (t ComponentType) Locations() []string {
	switch t {
	case ComponentAPIEndpoint, ComponentPaymentGateway, ComponentLoadBalancer:
		return CloudRegions
	case ComponentDatabase, ComponentFileStorage, ComponentSFTPServer:
		return Datacenters
	}
	all := make([]string, 0, len(CloudRegions)+len(Datacenters))
	all = append(all, CloudRegions...)
	return append(all, Datacenters...)
}

func (t ComponentType) ExposesPort() bool {
	return t == ComponentAPIEndpoint || t == ComponentSFTPServer
}

// NameSegment renders "api_endpoint" as "Apiendpoint".
func (t ComponentType) NameSegment() string {
	s := strings.ReplaceAll(string(t), "_", "")
	return strings.ToUpper(s[:1]) + s[1:]
}

func (t ComponentType) KBCategory() (string, bool) {
	switch t {
	case ComponentSFTPServer:
		return "file_transfer_problems", true
	case ComponentAPIEndpoint:
		return "api_integration", true
	case ComponentDatabase:
		return "database_issues", true
	case ComponentLoadBalancer, ComponentFirewall:
		return "network_connectivity", true
	case ComponentAuthenticationService:
		return "authentication_issues", true
	case ComponentPaymentGateway:
		return "payment_processing", true
	case ComponentFileStorage:
		return "backup_recovery", true
	case ComponentMonitoringSystem:
		return "monitoring_alerts", true
	}
	return "", false
}

type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentTest        Environment = "test"
)

var Environments = []Environment{EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentTest}

func (e Environment) Title() string {
	return strings.ToUpper(string(e)[:1]) + string(e)[1:]
}

type ComponentStatus string

const (
	ComponentOnline      ComponentStatus = "online"
	ComponentOffline     ComponentStatus = "offline"
	ComponentMaintenance ComponentStatus = "maintenance"
	ComponentDegraded    ComponentStatus = "degraded"
)

type InfrastructureComponent struct {
	ComponentID   string          `json:"component_id"`
	ProductID     string          `json:"product_id"`
	ComponentName string          `json:"component_name"`
	ComponentType ComponentType   `json:"component_type"`
	Environment   Environment     `json:"environment"`
	Location      string          `json:"location"`
	PortNumber    *int            `json:"port_number"`
	Status        ComponentStatus `json:"status"`
	CreatedAt     Timestamp       `json:"created_at"`
	UpdatedAt     Timestamp       `json:"updated_at"`
}

func (c InfrastructureComponent) Key() string { return c.ComponentID }
