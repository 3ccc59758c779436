package entity

import "strings"

// OrgStatus is shared by clients and vendors.
type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusInactive  OrgStatus = "inactive"
	OrgStatusSuspended OrgStatus = "suspended"
)

// Dormant reports whether people attached to the organization must be inactive.
func (s OrgStatus) Dormant() bool {
	return s == OrgStatusInactive || s == OrgStatusSuspended
}

type ClientType string

const (
	ClientTypeEnterprise    ClientType = "enterprise"
	ClientTypeMidMarket     ClientType = "mid_market"
	ClientTypeSmallBusiness ClientType = "small_business"
	ClientTypeStartup       ClientType = "startup"
)

var ClientTypes = []ClientType{
	ClientTypeEnterprise,
	ClientTypeMidMarket,
	ClientTypeSmallBusiness,
	ClientTypeStartup,
}

func (t ClientType) Industries() []string {
	switch t {
	case ClientTypeEnterprise:
		return []string{"Aerospace", "Automotive", "Government", "Energy", "Telecommunications", "Financial Services"}
	case ClientTypeMidMarket:
		return []string{"Manufacturing", "Insurance", "Healthcare", "Real Estate", "Technology"}
	case ClientTypeSmallBusiness:
		return []string{"Retail", "Food & Beverage", "Construction", "Hospitality"}
	case ClientTypeStartup:
		return []string{"Technology", "Biotechnology", "Media", "Education", "Fintech"}
	}
	return nil
}

type Client struct {
	ClientID           string     `json:"client_id"`
	ClientName         string     `json:"client_name"`
	RegistrationNumber string     `json:"registration_number"`
	ContactEmail       string     `json:"contact_email"`
	ContactPhone       string     `json:"contact_phone"`
	ClientType         ClientType `json:"client_type"`
	Industry           string     `json:"industry"`
	Country            string     `json:"country"`
	Status             OrgStatus  `json:"status"`
	CreatedAt          Timestamp  `json:"created_at"`
	UpdatedAt          Timestamp  `json:"updated_at"`
}

func (c Client) Key() string { return c.ClientID }

type VendorType string

const (
	VendorTypeCloudProvider          VendorType = "cloud_provider"
	VendorTypePaymentProcessor       VendorType = "payment_processor"
	VendorTypeSoftwareVendor         VendorType = "software_vendor"
	VendorTypeInfrastructureProvider VendorType = "infrastructure_provider"
	VendorTypeSecurityVendor         VendorType = "security_vendor"
)

var VendorTypes = []VendorType{
	VendorTypeCloudProvider,
	VendorTypePaymentProcessor,
	VendorTypeSoftwareVendor,
	VendorTypeInfrastructureProvider,
	VendorTypeSecurityVendor,
}

// BrandNames are the base trading names a vendor of this type may use.
func (t VendorType) BrandNames() []string {
	switch t {
	case VendorTypeCloudProvider:
		return []string{"AOS Cloud", "Azurian Cloud Services", "Goggle Cloud Platform", "IBM Nimbus", "Orcale Cloud", "DigitalOceanic", "LinodeX", "Vulturis"}
	case VendorTypePaymentProcessor:
		return []string{"Stripee", "PayPole", "Squarix Payments", "Adyant", "Worldpayz", "Authorize.NetX", "Braintreee", "Klarno"}
	case VendorTypeSoftwareVendor:
		return []string{"Microcraft", "Orcale Systems", "SAPhia Solutions", "SalesForza", "Adobix", "Atlasian", "ServiceNowo", "Workdaze"}
	case VendorTypeInfrastructureProvider:
		return []string{"Cysco Systems", "VMwere", "Red Hatchet", "Dockar Inc", "HashyCorp", "Kubernetix", "Terrafirm", "Ansiblee"}
	case VendorTypeSecurityVendor:
		return []string{"CrowdStrik3", "Palo Alto Netwerks", "Symantix", "McAfree", "Fortanett", "CheckPoynt", "Splonq", "Oktra"}
	}
	return nil
}

func (t VendorType) ProductTypes() []ProductType {
	switch t {
	case VendorTypeCloudProvider:
		return []ProductType{ProductTypeAPIGateway, ProductTypeDataIntegration, ProductTypeMonitoringTool, ProductTypeBackupService}
	case VendorTypePaymentProcessor:
		return []ProductType{ProductTypePaymentProcessing, ProductTypeAPIGateway}
	case VendorTypeSoftwareVendor:
		return []ProductType{ProductTypeBankingSystem, ProductTypeReportingPlatform, ProductTypeDataIntegration}
	case VendorTypeInfrastructureProvider:
		return []ProductType{ProductTypeMonitoringTool, ProductTypeSecurityService, ProductTypeBackupService}
	case VendorTypeSecurityVendor:
		return []ProductType{ProductTypeSecurityService, ProductTypeMonitoringTool}
	}
	return nil
}

// Title renders "cloud_provider" as "Cloud Provider".
func (t VendorType) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

type Vendor struct {
	VendorID     string     `json:"vendor_id"`
	VendorName   string     `json:"vendor_name"`
	VendorType   VendorType `json:"vendor_type"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	Status       OrgStatus  `json:"status"`
	CreatedAt    Timestamp  `json:"created_at"`
}

func (v Vendor) Key() string { return v.VendorID }
