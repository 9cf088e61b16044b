package domain

import "time"

// Arrival is one inbound arrival line (one PO receipt at the dock).
type Arrival struct {
	ID          int64     `json:"id" db:"id"`
	Date        string    `json:"date" db:"date"`
	ArrivalTime string    `json:"arrival_time" db:"arrival_time"`
	ReceiptNo   string    `json:"receipt_no" db:"receipt_no"`
	PoNo        string    `json:"po_no" db:"po_no"`
	Brand       string    `json:"brand" db:"brand"`
	PoQty       int       `json:"po_qty" db:"po_qty"`
	ItemType    string    `json:"item_type" db:"item_type"`
	Operator    string    `json:"operator" db:"operator"`
	Note        string    `json:"note" db:"note"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Transaction is a warehouse movement (receive, putaway, ...) tied to a receipt.
type Transaction struct {
	ID              int64     `json:"id" db:"id"`
	Date            string    `json:"date" db:"date"`
	TimeTransaction string    `json:"time_transaction" db:"time_transaction"`
	ReceiptNo       string    `json:"receipt_no" db:"receipt_no"`
	Sku             string    `json:"sku" db:"sku"`
	OperateType     string    `json:"operate_type" db:"operate_type"`
	Qty             int       `json:"qty" db:"qty"`
	Operator        string    `json:"operator" db:"operator"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Vas is a value-added-service task line.
type Vas struct {
	ID        int64     `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"`
	StartTime string    `json:"start_time" db:"start_time"`
	EndTime   string    `json:"end_time" db:"end_time"`
	Brand     string    `json:"brand" db:"brand"`
	Sku       string    `json:"sku" db:"sku"`
	ItemType  string    `json:"item_type" db:"item_type"`
	VasType   string    `json:"vas_type" db:"vas_type"`
	Qty       int       `json:"qty" db:"qty"`
	Operator  string    `json:"operator" db:"operator"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Dcc is a daily cycle count line. ReconcileVariance is the round-2 recount
// result; when present it supersedes Variance in accuracy math.
type Dcc struct {
	ID                int64     `json:"id" db:"id"`
	Date              string    `json:"date" db:"date"`
	PhyInv            string    `json:"phy_inv" db:"phy_inv"`
	Zone              string    `json:"zone" db:"zone"`
	Location          string    `json:"location" db:"location"`
	Owner             string    `json:"owner" db:"owner"`
	Sku               string    `json:"sku" db:"sku"`
	Brand             string    `json:"brand" db:"brand"`
	Description       string    `json:"description" db:"description"`
	SysQty            int       `json:"sys_qty" db:"sys_qty"`
	PhyQty            int       `json:"phy_qty" db:"phy_qty"`
	Variance          int       `json:"variance" db:"variance"`
	ReconcileVariance *int      `json:"reconcile_variance" db:"reconcile_variance"`
	Operator          string    `json:"operator" db:"operator"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Damage is a project-damage finding.
type Damage struct {
	ID           int64     `json:"id" db:"id"`
	Date         string    `json:"date" db:"date"`
	Brand        string    `json:"brand" db:"brand"`
	Sku          string    `json:"sku" db:"sku"`
	Description  string    `json:"description" db:"description"`
	Qty          int       `json:"qty" db:"qty"`
	DamageNote   string    `json:"damage_note" db:"damage_note"`
	DamageReason string    `json:"damage_reason" db:"damage_reason"`
	Operator     string    `json:"operator" db:"operator"`
	QcBy         string    `json:"qc_by" db:"qc_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Soh is one stock-on-hand line (qty of one SKU batch in one location).
// Date columns are free-form text from upstream exports; downstream code must
// go through report.ParseDate rather than trusting the format.
type Soh struct {
	ID               int64     `json:"id" db:"id"`
	Date             string    `json:"date" db:"date"`
	Location         string    `json:"location" db:"location"`
	LocationCategory string    `json:"location_category" db:"location_category"`
	Sku              string    `json:"sku" db:"sku"`
	SkuCategory      string    `json:"sku_category" db:"sku_category"`
	Brand            string    `json:"brand" db:"brand"`
	Zone             string    `json:"zone" db:"zone"`
	LocationType     string    `json:"location_type" db:"location_type"`
	Owner            string    `json:"owner" db:"owner"`
	Status           string    `json:"status" db:"status"`
	Qty              int       `json:"qty" db:"qty"`
	WhArrivalDate    string    `json:"wh_arrival_date" db:"wh_arrival_date"`
	ReceiptNo        string    `json:"receipt_no" db:"receipt_no"`
	MfgDate          string    `json:"mfg_date" db:"mfg_date"`
	ExpDate          string    `json:"exp_date" db:"exp_date"`
	BatchNo          string    `json:"batch_no" db:"batch_no"`
	UpdateDate       string    `json:"update_date" db:"update_date"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// QcReturn is a returned-goods QC line.
type QcReturn struct {
	ID         int64     `json:"id" db:"id"`
	Date       string    `json:"date" db:"date"`
	Receipt    string    `json:"receipt" db:"receipt"`
	ReturnDate string    `json:"return_date" db:"return_date"`
	Brand      string    `json:"brand" db:"brand"`
	Owner      string    `json:"owner" db:"owner"`
	Sku        string    `json:"sku" db:"sku"`
	Qty        int       `json:"qty" db:"qty"`
	FromLoc    string    `json:"from_loc" db:"from_loc"`
	ToLoc      string    `json:"to_loc" db:"to_loc"`
	Operator   string    `json:"operator" db:"operator"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Location is a warehouse location master row.
type Location struct {
	ID               int64     `json:"id" db:"id"`
	Location         string    `json:"location" db:"location"`
	LocationCategory string    `json:"location_category" db:"location_category"`
	Zone             string    `json:"zone" db:"zone"`
	LocationType     string    `json:"location_type" db:"location_type"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Attendance is one manpower attendance record.
type Attendance struct {
	ID        int64     `json:"id" db:"id"`
	Nik       string    `json:"nik" db:"nik"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	Jobdesc   string    `json:"jobdesc" db:"jobdesc"`
	Divisi    string    `json:"divisi" db:"divisi"`
	Date      string    `json:"date" db:"date"`
	ClockIn   string    `json:"clock_in" db:"clock_in"`
	ClockOut  string    `json:"clock_out" db:"clock_out"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Employee is the manpower master record. Status is the employment status
// (Reguler or Tambahan).
type Employee struct {
	ID        int64     `json:"id" db:"id"`
	Nik       string    `json:"nik" db:"nik"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	Jobdesc   string    `json:"jobdesc" db:"jobdesc"`
	Divisi    string    `json:"divisi" db:"divisi"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Unloading is a daily unloading (vehicle count) record per brand.
type Unloading struct {
	ID            int64     `json:"id" db:"id"`
	Date          string    `json:"date" db:"date"`
	Brand         string    `json:"brand" db:"brand"`
	TotalVehicles int       `json:"total_vehicles" db:"total_vehicles"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectProductivity is a manually entered project task line.
type ProjectProductivity struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Task      string    `json:"task" db:"task"`
	Qty       int       `json:"qty" db:"qty"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
