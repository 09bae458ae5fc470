package models

const (
	BinStatusActive = "Active"

	// Fill level bands shown on the dashboard
	FillLevelCritical = 80.0
	FillLevelWarning  = 50.0
)

type Bin struct {
	BinID     int64   `json:"bin_id" db:"bin_id"`
	Status    string  `json:"status" db:"status"`
	FillLevel float64 `json:"fill_level" db:"fill_level"`
	Sensor    *string `json:"sensor" db:"sensor"`
	AreaID    int64   `json:"area_id" db:"area_id"`
	CreatedAt int64   `json:"created_at" db:"created_at"` // Unix timestamp
	AreaName  *string `json:"area_name,omitempty" db:"area_name"`
}

// BinResponse adds the dashboard fill band to a Bin
type BinResponse struct {
	Bin
	FillStatus string `json:"fill_status"`
}

// ToResponse converts a Bin to BinResponse
func (b *Bin) ToResponse() BinResponse {
	status := "Normal"
	switch {
	case b.FillLevel >= FillLevelCritical:
		status = "Critical"
	case b.FillLevel >= FillLevelWarning:
		status = "Warning"
	}
	return BinResponse{Bin: *b, FillStatus: status}
}

// BinRequest is the request body for POST /bins and for a full PUT /bins/{id}.
// A PUT without "status" is a fill level update instead.
type BinRequest struct {
	Status    *string    `json:"status"`
	AreaID    FlexInt    `json:"area_id" validate:"required"`
	FillLevel *FlexFloat `json:"fill_level"`
	Sensor    *string    `json:"sensor"`
}

// BinFillLevelRequest is the narrow PUT /bins/{id} body
type BinFillLevelRequest struct {
	FillLevel *FlexFloat `json:"fill_level" validate:"required"`
}

type BinStatistics struct {
	TotalBins        int64   `json:"total_bins" db:"total_bins"`
	AverageFillLevel float64 `json:"average_fill_level" db:"average_fill_level"`
	CriticalBins     int64   `json:"critical_bins" db:"critical_bins"`
	FillableBins     int64   `json:"fillable_bins" db:"fillable_bins"`
}
