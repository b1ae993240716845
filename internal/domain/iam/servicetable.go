package iam

import "sort"

// serviceRoleNames maps an AWS service identifier to the role name IAM
// assigns to that service's service-linked role. The table is fixed at build
// time; supporting another service means adding an entry here.
var serviceRoleNames = map[string]string{
	"inspector.amazonaws.com": "AWSServiceRoleForAmazonInspector",
}

// RoleNameForService returns the provider-assigned role name for the given
// service identifier. The second return value reports whether the service is
// supported.
func RoleNameForService(serviceName string) (string, bool) {
	roleName, ok := serviceRoleNames[serviceName]
	return roleName, ok
}

// SupportedServices returns the service identifiers known to the table,
// sorted for stable error messages.
func SupportedServices() []string {
	services := make([]string, 0, len(serviceRoleNames))
	for name := range serviceRoleNames {
		services = append(services, name)
	}
	sort.Strings(services)
	return services
}
