package constant

import "it-helpdesk-be/internal/entity"

// IntegrationLabel is reported alongside the incident list so the client
// can show where the data came from.
const IntegrationLabel = "ServiceNow Simulation"

// ServiceNowIncidents is the fixed demo incident queue.
var ServiceNowIncidents = []entity.Incident{
	{
		Number:      "INC0012345",
		Title:       "User Cannot Access Email",
		Description: "User reports unable to access Outlook email since this morning. Getting authentication errors.",
		Priority:    "2-High",
		Status:      "New",
		Category:    "Email",
		Created:     "2024-09-25T08:30:00Z",
	},
	{
		Number:      "INC0012346",
		Title:       "Laptop Running Very Slow",
		Description: "Employee laptop taking 10+ minutes to start, applications freezing frequently.",
		Priority:    "3-Medium",
		Status:      "In Progress",
		Category:    "Performance",
		Created:     "2024-09-25T09:15:00Z",
	},
	{
		Number:      "INC0012347",
		Title:       "Blue Screen Error on Workstation",
		Description: "Desktop computer showing blue screen with IRQL_NOT_LESS_OR_EQUAL error on startup.",
		Priority:    "2-High",
		Status:      "New",
		Category:    "Hardware",
		Created:     "2024-09-25T10:45:00Z",
	},
}
