package entity

// CarrierSourceRow is one row of the external carrier spreadsheet, before resolution.
type CarrierSourceRow struct {
	Row             int // 1-based spreadsheet row, header included.
	OriginCity      string
	OriginState     string
	GroupName       string
	CarrierName     string
	Company         string
	Contact         string
	HasLoaded       bool
	HasRegistration bool
	Product         string
	Price           float64
}

// RowFailure records why a source row was excluded from synchronization.
type RowFailure struct {
	Row    int    `json:"row"`
	City   string `json:"city"`
	State  string `json:"state"`
	Reason string `json:"reason"`
}

// SyncReport summarizes one synchronization run.
type SyncReport struct {
	Inserted  int          `json:"inserted"`
	Updated   int          `json:"updated"`
	Unchanged int          `json:"unchanged"`
	Failed    []RowFailure `json:"failed"`
}
