package hubspot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StageMap translates internal statuses to HubSpot pipeline stages and back.
type StageMap struct {
	DealStages          map[string]string `yaml:"deal_stages"`
	BookingStatuses     map[string]string `yaml:"booking_statuses"`
	TicketStages        map[string]string `yaml:"ticket_stages"`
	MaintenanceStatuses map[string]string `yaml:"maintenance_statuses"`

	DefaultDealStage         string `yaml:"default_deal_stage"`
	DefaultBookingStatus     string `yaml:"default_booking_status"`
	DefaultTicketStage       string `yaml:"default_ticket_stage"`
	DefaultMaintenanceStatus string `yaml:"default_maintenance_status"`
}

// DefaultStageMap matches the default HubSpot sales and support pipelines.
func DefaultStageMap() *StageMap {
	return &StageMap{
		DealStages: map[string]string{
			"inquiry":     "appointmentscheduled",
			"confirmed":   "qualifiedtobuy",
			"checked_in":  "presentationscheduled",
			"active":      "decisionmakerboughtin",
			"checked_out": "closedwon",
			"completed":   "closedwon",
			"cancelled":   "closedlost",
		},
		BookingStatuses: map[string]string{
			"appointmentscheduled":  "inquiry",
			"qualifiedtobuy":        "confirmed",
			"presentationscheduled": "checked_in",
			"decisionmakerboughtin": "active",
			"closedwon":             "completed",
			"closedlost":            "cancelled",
		},
		TicketStages: map[string]string{
			"requested":   "1",
			"scheduled":   "2",
			"in_progress": "3",
			"completed":   "4",
			"cancelled":   "5",
		},
		MaintenanceStatuses: map[string]string{
			"1": "requested",
			"2": "scheduled",
			"3": "in_progress",
			"4": "completed",
			"5": "cancelled",
		},
		DefaultDealStage:         "appointmentscheduled",
		DefaultBookingStatus:     "inquiry",
		DefaultTicketStage:       "1",
		DefaultMaintenanceStatus: "requested",
	}
}

// LoadStageMap overlays the YAML file at path on the defaults.
// An empty path returns the defaults.
func LoadStageMap(path string) (*StageMap, error) {
	m := DefaultStageMap()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage map: %w", err)
	}

	var override StageMap
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse stage map %s: %w", path, err)
	}

	merge(m.DealStages, override.DealStages)
	merge(m.BookingStatuses, override.BookingStatuses)
	merge(m.TicketStages, override.TicketStages)
	merge(m.MaintenanceStatuses, override.MaintenanceStatuses)
	setIf(&m.DefaultDealStage, override.DefaultDealStage)
	setIf(&m.DefaultBookingStatus, override.DefaultBookingStatus)
	setIf(&m.DefaultTicketStage, override.DefaultTicketStage)
	setIf(&m.DefaultMaintenanceStatus, override.DefaultMaintenanceStatus)

	return m, nil
}

func (m *StageMap) DealStage(bookingStatus string) string {
	return lookup(m.DealStages, bookingStatus, m.DefaultDealStage)
}

func (m *StageMap) BookingStatus(dealStage string) string {
	return lookup(m.BookingStatuses, dealStage, m.DefaultBookingStatus)
}

func (m *StageMap) TicketStage(maintenanceStatus string) string {
	return lookup(m.TicketStages, maintenanceStatus, m.DefaultTicketStage)
}

func (m *StageMap) MaintenanceStatus(ticketStage string) string {
	return lookup(m.MaintenanceStatuses, ticketStage, m.DefaultMaintenanceStatus)
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		if v != "" {
			dst[k] = v
		}
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
