package models

// DashboardSummary is the GET /dashboard payload
type DashboardSummary struct {
	Bills    BillStatistics            `json:"bills"`
	Payments PaymentStatistics         `json:"payments"`
	Waste    []WasteCategoryStatistics `json:"waste"`
	Bins     BinStatistics             `json:"bins"`
	Counts   map[string]int64          `json:"counts"`
}

// EntityEvent is pushed to websocket clients after every successful write
type EntityEvent struct {
	Type string          `json:"type"`
	Data EntityEventData `json:"data"`
}

type EntityEventData struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     int64  `json:"id"`
}

func NewEntityEvent(entity, action string, id int64) EntityEvent {
	return EntityEvent{
		Type: "entity_changed",
		Data: EntityEventData{Entity: entity, Action: action, ID: id},
	}
}
