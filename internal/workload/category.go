package workload

// Category groups workloads for roll-up scoring, per the data model's
// CategoryResults bags.
type Category string

const (
	ProjectOperations Category = "ProjectOperations"
	BuildPerformance  Category = "BuildPerformance"
	Responsiveness    Category = "Responsiveness"
	Graphics          Category = "Graphics"
)

// Categories lists all four categories in declared order; Graphics is
// last because it is the only optional one.
var Categories = []Category{ProjectOperations, BuildPerformance, Responsiveness, Graphics}
