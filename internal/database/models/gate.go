package models

// Gate represents a physical checkpoint. The builtin set below is immutable
// reference data; organizations may register custom codes on top of it.
type Gate struct {
	BaseModel
	Location    string `json:"location" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
	Builtin     bool   `json:"builtin" gorm:"default:false"`
}

// TableName returns the table name for Gate
func (Gate) TableName() string {
	return "gates"
}

// Builtin gate locations. Every deployment carries at least these.
const (
	GateMain          = "main_gate"
	GateSide          = "side_gate"
	GateBack          = "back_gate"
	GateParking       = "parking_gate"
	GateStaffEntrance = "staff_entrance"
	GateVIPEntrance   = "vip_entrance"
)

// BuiltinGates returns the fixed minimum gate catalogue.
func BuiltinGates() []Gate {
	return []Gate{
		{Location: GateMain, Description: "Main entrance gate", Builtin: true},
		{Location: GateSide, Description: "Side entrance gate", Builtin: true},
		{Location: GateBack, Description: "Back entrance gate", Builtin: true},
		{Location: GateParking, Description: "Parking lot gate", Builtin: true},
		{Location: GateStaffEntrance, Description: "Staff entrance", Builtin: true},
		{Location: GateVIPEntrance, Description: "VIP entrance", Builtin: true},
	}
}
