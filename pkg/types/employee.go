package types

// TableSize is the number of records in every generated Table.
const TableSize = 100

// Department names, in enumeration order. Charts and breakdowns list
// departments in this order.
const (
	DeptFinance    = "Finance"
	DeptRnD        = "R&D"
	DeptMarketing  = "Marketing"
	DeptIT         = "IT"
	DeptOperations = "Operations"
	DeptHR         = "HR"
	DeptSales      = "Sales"
)

// Departments is the fixed department enumeration.
var Departments = []string{
	DeptFinance,
	DeptRnD,
	DeptMarketing,
	DeptIT,
	DeptOperations,
	DeptHR,
	DeptSales,
}

// Regions is the fixed region enumeration.
var Regions = []string{
	"Asia Pacific",
	"Europe",
	"North America",
	"Latin America",
	"Middle East & Africa",
}

// Record is one synthetic employee.
type Record struct {
	EmployeeID         string
	Department         string
	Region             string
	PerformanceScore   float64
	YearsExperience    int
	SatisfactionRating float64
}

// Table is the ordered collection of generated records.
type Table []Record

// IsDepartment reports whether name is one of the enumerated departments.
func IsDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}
