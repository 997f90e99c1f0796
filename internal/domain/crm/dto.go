package crm

type SyncRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type SyncResult struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	HubspotID string `json:"hubspot_id"`
}

type Counts struct {
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

type BulkResult struct {
	Owners      Counts `json:"owners"`
	Bookings    Counts `json:"bookings"`
	Maintenance Counts `json:"maintenance"`
}

type RetryResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Dead      int `json:"dead"`
}

type WebhookResult struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Ignored   int      `json:"ignored"`
	Errors    []string `json:"errors,omitempty"`
}

type PurgeResult struct {
	Done int64 `json:"done"`
	Dead int64 `json:"dead"`
}
